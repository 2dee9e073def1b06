package service

import (
	"context"

	"github.com/recipebookapp/recipebook-server/internal/config"
	"github.com/recipebookapp/recipebook-server/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
