package client

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-wallet-keeper/internal/adapter"
	"github.com/MKhiriev/go-wallet-keeper/internal/chain/sim"
	"github.com/MKhiriev/go-wallet-keeper/internal/clock"
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/handler"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/server"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/workers"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	server   server.Server
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds the daemon from cfg. Storages opened here are released by
// Run or, on a construction error, before NewApp returns.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, m *metrics.Metrics, log *logger.Logger) (app *App, err error) {
	keychain := crypto.NewKeyChainService()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, []byte(cfg.App.StoreKey), keychain, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}
	defer func() {
		if err != nil {
			storages.Close()
		}
	}()

	specs, err := sim.SelectNetworks(sim.DefaultNetworks(cfg.App.Mainnet), cfg.Engine.Networks)
	if err != nil {
		return nil, fmt.Errorf("engine networks: %w", err)
	}
	engine := sim.NewEngine(specs, log)

	trusted := clock.NewTrusted(clock.System{})

	services, err := service.NewClientServices(ctx, cfg, storages, engine, keychain, trusted, defaultWallets(cfg.Wallets, specs), m, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	jobs := []workers.Worker{
		workers.NewSessionGate(services.Auth, services.Vault, services.Orchestrator, cfg.Workers.CloseDelay, log),
	}
	if cfg.Adapter.TimeServerURL != "" {
		timeAdapter, adapterErr := adapter.NewHTTPTimeAdapter(cfg.Adapter, log)
		if adapterErr != nil {
			services.Auth.Close()
			return nil, fmt.Errorf("create time adapter: %w", adapterErr)
		}
		jobs = append(jobs, workers.NewTimeRefresher(timeAdapter, trusted, cfg.Workers.TimeSyncInterval, m, log))
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, buildInfo, m, log)
	if err != nil {
		services.Auth.Close()
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		services.Auth.Close()
		return nil, fmt.Errorf("create server: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		workers:  workers.NewWorkers(jobs...),
		server:   srv,
		logger:   log,
	}, nil
}

// Run serves the control API and runs the workers until ctx is done or a
// worker fails. The sync session is closed and the storages released on
// the way out.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.workers.Run(gctx)
	})
	g.Go(func() error {
		return a.server.Run(gctx)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	return errors.Join(err, a.shutdown())
}

func (a *App) shutdown() error {
	log := a.logger.With().Str("func", "App.shutdown").Logger()

	var errs []error
	if closed, err := a.services.Orchestrator.CloseIfOpen(); err != nil {
		errs = append(errs, fmt.Errorf("close session: %w", err))
	} else if closed {
		log.Info().Msg("sync session closed")
	}

	a.services.Auth.Close()

	if err := a.storages.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storages: %w", err))
	}

	log.Info().Msg("daemon stopped")
	return errors.Join(errs...)
}

// defaultWallets are the configured defaults or, when none are set, the
// native coins of every exposed network.
func defaultWallets(cfg config.ClientWallets, specs []sim.NetworkSpec) []string {
	if len(cfg.DefaultEnabled) > 0 {
		return cfg.DefaultEnabled
	}

	ids := make([]string, 0, len(specs))
	for _, s := range specs {
		ids = append(ids, s.NativeID())
	}
	return ids
}
