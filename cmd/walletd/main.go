package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-wallet-keeper/internal/client"
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, closer := newLogger(cfg.App)
	defer closer.Close()

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("unknown log level, keeping debug")
	}

	m, err := metrics.New(metrics.Options{})
	if err != nil {
		log.Fatal().Err(err).Msg("error registering metrics")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo.WithVersionFallback(cfg.App.Version), m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init wallet daemon error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("wallet daemon run error")
		closer.Close()
		os.Exit(1)
	}
}

func newLogger(cfg config.ClientApp) (*logger.Logger, io.Closer) {
	if cfg.LogFile != "" {
		return logger.NewFileLogger("walletd", cfg.LogFile)
	}
	return logger.NewLogger("walletd"), io.NopCloser(nil)
}
