package di

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wspjoy2011/sql-repository-example/cmd/usersctl/infrastructure"
	"github.com/wspjoy2011/sql-repository-example/internal/adapter/db/sqlite"
	"github.com/wspjoy2011/sql-repository-example/internal/config"
	"github.com/wspjoy2011/sql-repository-example/internal/usecase/user"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *gorm.DB
	UserUC user.Usecase
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := sqlite.NewUserRepo(db, l)
	userUC := user.New(repo, l)

	return &Container{
		Config: cfg,
		Logger: l,
		DB:     db,
		UserUC: userUC,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.DB == nil {
		return nil
	}
	if err := infrastructure.CloseDatabase(c.DB); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
