package infrastructure

import (
	"fmt"

	sqlitedriver "github.com/glebarez/sqlite"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	sqliterepo "github.com/wspjoy2011/sql-repository-example/internal/adapter/db/sqlite"
	"github.com/wspjoy2011/sql-repository-example/internal/config"
	"github.com/wspjoy2011/sql-repository-example/pkg/logger"
)

// NewDatabase opens the configured store and ensures the users table exists.
func NewDatabase(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	gormLogger := logger.NewGormLogger(l, cfg.Logger.SlowQuerySeconds, cfg.Logger.Level)

	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		dialector = sqlitedriver.Open(cfg.DB.Path)
	case config.DriverPostgres:
		dialector = pgdriver.Open(cfg.DB.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := sqliterepo.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	l.Info("database connected",
		zap.String("driver", cfg.DB.Driver),
		zap.String("path", cfg.DB.Path),
	)

	return db, nil
}

// CloseDatabase releases the underlying database connection.
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
