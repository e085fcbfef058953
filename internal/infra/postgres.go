package infra

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"healthtrack/internal/config"
	"healthtrack/internal/models/db_models"
)

const gormSlowThreshold = 500 * time.Millisecond

// InitPostgresql opens the connection pool and, when enabled, migrates the
// schema for every model in db_models.AllModels.
func InitPostgresql(cfg config.DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             gormSlowThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)
	sqlDB.SetConnMaxLifetime(cfg.MaxLifeTime)

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(db_models.AllModels()...); err != nil {
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
		log.Info("database schema migrated")
	}

	log.Info("connected to PostgreSQL")
	return db, nil
}

func ClosePostgresql(db *gorm.DB, log *logrus.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	log.Info("PostgreSQL database connection closed")
	return nil
}
