package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/config"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/handler"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/middleware"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/notification"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/repository"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/router"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/scheduler"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/service"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/service/ports"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/watcher"
)

const migrationsDir = "migrations"

type App struct {
	cfg         *config.Config
	log         logger.Logger
	db          *dbpg.DB
	calendar    *service.CalendarService
	httpServer  *http.Server
	scheduler   *scheduler.Scheduler
	fileWatcher *watcher.FileWatcher
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ProductionRates",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

// initProvider builds the configured persistence backend plus the local
// fallback store the availability service writes when the primary
// backend fails. The file backend is its own fallback.
func (a *App) initProvider() (primary, fallback ports.CalendarProvider, filePath string, err error) {
	local, err := repository.NewFileProvider(a.cfg.Storage.FilePath)
	if err != nil {
		return nil, nil, "", fmt.Errorf("init file store: %w", err)
	}

	switch a.cfg.Storage.Backend {
	case "file":
		return local, nil, local.Path(), nil

	case "postgres":
		if err := a.runMigrations(); err != nil {
			return nil, nil, "", fmt.Errorf("migrations: %w", err)
		}
		if err := a.initDB(); err != nil {
			return nil, nil, "", err
		}
		return repository.NewDocumentProvider(a.db), local, "", nil

	case "git":
		git, err := repository.NewGitRepoProvider(repository.GitRepoConfig{
			Token:  a.cfg.GitRepo.Token,
			Owner:  a.cfg.GitRepo.Owner,
			Repo:   a.cfg.GitRepo.Repo,
			Branch: a.cfg.GitRepo.Branch,
			Path:   a.cfg.GitRepo.Path,
		})
		if err != nil {
			return nil, nil, "", fmt.Errorf("init git store: %w", err)
		}
		return git, local, "", nil

	default:
		return nil, nil, "", fmt.Errorf("unknown storage backend %q", a.cfg.Storage.Backend)
	}
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	primary, fallback, filePath, err := a.initProvider()
	if err != nil {
		return err
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.calendar = service.NewCalendarService(primary, fallback, n, a.log)
	if err := a.calendar.Load(context.Background()); err != nil {
		return fmt.Errorf("load calendar: %w", err)
	}

	a.scheduler = scheduler.New(a.calendar, a.cfg.Scheduler.SyncInterval, a.log)

	if filePath != "" {
		a.fileWatcher = watcher.New(filePath, a.calendar, a.log)
	}

	h := handler.NewHandler(a.calendar)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	if a.fileWatcher != nil {
		go func() {
			if err := a.fileWatcher.Start(ctx); err != nil {
				a.log.Error("file watcher failed",
					logger.String("error", err.Error()),
				)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	// Flush the in-memory store one last time so nothing edited since
	// the previous save is lost.
	if err := a.calendar.Save(shutdownCtx); err != nil {
		a.log.Error("final calendar save failed",
			logger.String("error", err.Error()),
		)
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
