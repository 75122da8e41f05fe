package handler

import (
	"github.com/mzotov/cliptide/internal/config"
	"github.com/mzotov/cliptide/internal/handler/http"
	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, version string, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, version, logger),
	}, nil
}
