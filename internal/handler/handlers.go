package handler

import (
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/handler/http"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(
	services *service.ClientServices,
	cfg config.ClientServer,
	buildInfo models.AppBuildInfo,
	m *metrics.Metrics,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, buildInfo, m, logger),
	}, nil
}
