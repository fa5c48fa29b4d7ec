package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/tradeloghq/tradelog/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormprometheus "gorm.io/plugin/prometheus"
)

// New opens the database handle for the configured driver. SQLite uses the
// pure-Go driver so the binary stays cgo-free.
func New(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.MetricsEnabled {
		if err := gdb.Use(gormprometheus.New(gormprometheus.Config{
			DBName:          cfg.ServiceName,
			RefreshInterval: 15,
		})); err != nil {
			log.Warn("gorm prometheus plugin failed", zap.Error(err))
		}
	}

	log.Info("database connected", zap.String("driver", cfg.Database.Driver))
	return gdb, nil
}
