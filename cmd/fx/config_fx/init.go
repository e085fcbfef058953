package config_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"healthtrack/internal/config"
	"healthtrack/pkg/logger"
)

var Module = fx.Provide(
	provideConfig, provideLogger)

func provideConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	return cfg, cfg.Validate()
}

func provideLogger(cfg config.Config) *logrus.Logger {
	return logger.New(cfg.Log)
}
