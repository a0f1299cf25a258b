package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wspjoy2011/sql-repository-example/cmd/usersctl/di"
	"github.com/wspjoy2011/sql-repository-example/internal/adapter/cli"
	"github.com/wspjoy2011/sql-repository-example/internal/config"
	"github.com/wspjoy2011/sql-repository-example/pkg/logger"
)

// Options carry command-line overrides for the loaded configuration.
type Options struct {
	ConfigPath string // directory holding app.env, "." by default
	DBPath     string // sqlite store path, overrides DB_PATH when set
	LogLevel   string // overrides LOG_LEVEL when set
}

// App represents the application
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Container *di.Container
	Loop      *cli.Loop
}

// New creates a new application instance
func New(opts Options) (*App, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.DBPath != "" {
		cfg.DB.Driver = config.DriverSQLite
		cfg.DB.Path = opts.DBPath
	}
	if opts.LogLevel != "" {
		cfg.Logger.Level = opts.LogLevel
	}

	l, err := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	container, err := di.NewContainer(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	loop := cli.NewLoop(container.UserUC, os.Stdin, os.Stdout, l)

	return &App{
		Config:    cfg,
		Logger:    l,
		Container: container,
		Loop:      loop,
	}, nil
}

// Run drives the command loop until exit, EOF or an interrupt signal.
// The store handle is released on every exit path.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := WithSignal(ctx)
	defer stop()

	a.Logger.Info("starting application",
		zap.String("driver", a.Config.DB.Driver),
		zap.String("db_path", a.Config.DB.Path),
	)

	defer func() {
		if err := a.Container.Close(); err != nil {
			a.Logger.Error("failed to close container", zap.Error(err))
		}
		_ = a.Logger.Sync()
	}()

	err := a.Loop.Run(ctx)

	a.Logger.Info("application shutdown complete")
	return err
}
