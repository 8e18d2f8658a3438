// Package server initializes and runs the application server.
// It opens the database and the session store, wires the service layer,
// starts the HTTP endpoint and the certificate sweeper, and handles
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Dvesiz/Ship-Management-System/internal/logging"
	"github.com/Dvesiz/Ship-Management-System/internal/server/auth"
	"github.com/Dvesiz/Ship-Management-System/internal/server/config"
	"github.com/Dvesiz/Ship-Management-System/internal/server/httpapi"
	"github.com/Dvesiz/Ship-Management-System/internal/server/kv"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/repomanager"
	"github.com/Dvesiz/Ship-Management-System/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger

	db           *sql.DB
	audit        *services.AuditService
	certificates *services.CertificateService
	httpServer   *http.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	store, err := kv.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("redis init error: %w", err)
	}

	signer := auth.NewSigner([]byte(cfg.SecretKey), cfg.SessionTTL)
	sessions := auth.NewSessionRegistry(store, cfg.SessionTTL)

	mailer := services.NewSMTPMailer(cfg)
	verifier := services.NewTurnstileVerifier(cfg, logger)
	auditSvc := services.NewAuditService(db, rm, cfg.AuditBufferSize, logger)
	certSvc := services.NewCertificateService(db, rm, logger)

	srv := httpapi.NewServer(cfg, logger, signer, sessions, httpapi.Services{
		Users:        services.NewUserService(db, rm, signer, sessions, store, mailer, verifier, logger),
		Ships:        services.NewShipService(db, rm, logger),
		Categories:   services.NewCategoryService(db, rm),
		Crews:        services.NewCrewService(db, rm),
		Voyages:      services.NewVoyageService(db, rm),
		Fuel:         services.NewFuelService(db, rm),
		Maintenance:  services.NewMaintenanceService(db, rm),
		Certificates: certSvc,
		Messages:     services.NewMessageService(db, rm),
		Files:        services.NewFileService(cfg),
		Audit:        auditSvc,
	})

	return &App{
		config:       cfg,
		logger:       logger,
		db:           db,
		audit:        auditSvc,
		certificates: certSvc,
		httpServer: &http.Server{
			Addr:    cfg.EndpointAddrHTTP,
			Handler: srv.Router(),
		},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	app.logger.Info(ctx, "http server listening", "addr", app.httpServer.Addr)
	if err := app.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// startCertSweeper reclassifies certificate statuses on a fixed interval.
// One pass runs immediately on startup so a long-stopped instance catches up.
func (app *App) startCertSweeper(ctx context.Context) {
	sweep := func() {
		changed, err := app.certificates.Sweep(ctx)
		if err != nil {
			app.logger.Error(ctx, "certificate sweep failed", "error", err)
			return
		}
		if changed > 0 {
			app.logger.Info(ctx, "certificate sweep done", "changed", changed)
		}
	}

	sweep()

	ticker := time.NewTicker(app.config.CertSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startCertSweeper(ctx)
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "http shutdown error", "error", err)
	}

	wg.Wait()

	// Drain queued audit entries before letting go of the database.
	app.audit.Close()
	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
	}

	app.logger.Info(context.Background(), "app stopped")
}
