package handler

import (
	"github.com/recipebookapp/recipebook-server/internal/config"
	"github.com/recipebookapp/recipebook-server/internal/handler/http"
	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
