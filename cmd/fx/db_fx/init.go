package db_fx

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"healthtrack/internal/config"
	"healthtrack/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg config.Config, log *logrus.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return infra.ClosePostgresql(db, log)
		},
	})
	return db, nil
}
