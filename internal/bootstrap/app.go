package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/records"
	"portfolio-backend/internal/services/health"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server"
	"portfolio-backend/internal/shared/storage/db"
	"portfolio-backend/internal/shared/telemetry"
)

const (
	backendPostgres = "postgres"
	backendMemory   = "memory"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Backend       string
	Gateway       records.Gateway
	RecordService *records.Service
	RecordHandler *records.Handler
	Health        *health.Service
}

// Build prepares the store, services and router.
func Build(cfg config.Config) (*App, error) {
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if sqlDB != nil {
		if cfg.RunMigrations {
			if err := db.RunMigrations(ctx, sqlDB); err != nil {
				telemetry.Warn("bootstrap.migrations_failed", map[string]any{"error": err})
			}
		}
		app.Backend = backendPostgres
		app.Gateway = records.NewPGGateway(sqlDB)
	} else {
		app.Backend = backendMemory
		app.Gateway = records.NewMemoryGateway()
	}

	app.RecordService = records.NewService(app.Gateway)
	app.RecordHandler = records.NewHandler(app.RecordService)
	app.Health = health.NewService(app.RecordService, app.Backend)

	router, err := server.NewRouter(server.RouterDeps{
		Config:        cfg,
		RecordHandler: app.RecordHandler,
		Health:        app.Health,
	})
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}
	app.Router = router

	telemetry.Info("bootstrap.ready", map[string]any{"env": cfg.Env, "backend": app.Backend})
	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

// buildDB returns nil with no error when dev-like environments run without a database.
// An unreachable server is not fatal: requests report the outage on their own.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if !cfg.HasDatabase() {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.no_database", map[string]any{"fallback": backendMemory})
			return nil, nil
		}
		return nil, fmt.Errorf("DB_HOST or DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	if db.IsLambdaRuntime() {
		opts = db.OptionsFromEnv(db.DefaultLambdaOptions())
	}
	return db.Open(ctx, cfg.DSN(), opts)
}
