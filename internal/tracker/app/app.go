package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	httpapi "github.com/aussiebroadwan/tracker/internal/tracker/http"
	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite"
	"github.com/aussiebroadwan/tracker/pkg/cryptox"
	"github.com/aussiebroadwan/tracker/pkg/eventx"
	"github.com/aussiebroadwan/tracker/pkg/jwtx"
	"github.com/aussiebroadwan/tracker/pkg/mailx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the tracker service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         store.Store
	keyManager *jwtx.KeyManager
	mailer     mailx.Mailer
	events     eventx.Publisher
	consumer   *eventx.KafkaConsumer // nil unless Kafka is configured

	// Services
	policy              *service.ApprovalPolicy
	tokenService        *service.TokenService
	twoFactorService    *service.TwoFactorService
	accountService      *service.AccountService
	approvalService     *service.ApprovalService
	cleanupService      *service.CleanupService
	housekeepingService *service.HousekeepingService
	taskService         *service.TaskService
	permissionService   *service.PermissionService
	kpiService          *service.KPIService
	auditService        *service.AuditService

	// HTTP server
	server *http.Server
	router *httpapi.Router

	stopConsumer context.CancelFunc
	consumerDone chan struct{}
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "tracker",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keyManager, err := InitKeys(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize JWT keys: %w", err)
	}
	app.keyManager = keyManager

	app.initMailer()
	if err := app.initEvents(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Migrate applies pending migrations and exits.
func Migrate(cfg Config) error {
	db, err := openStore(cfg.DatabaseFile)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return nil
}

// Logger returns the application logger.
func (app *Application) Logger() *slog.Logger { return app.logger }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	if app.cfg.HousekeepingInterval > 0 {
		app.housekeepingService.Start()
	}

	if app.consumer != nil {
		ctx, cancel := context.WithCancel(slogx.WithContext(context.Background(), app.logger))
		app.stopConsumer = cancel
		app.consumerDone = make(chan struct{})
		go func() {
			defer close(app.consumerDone)
			if err := app.consumer.Run(ctx); err != nil {
				app.logger.Error("user deleted consumer stopped", slog.Any("error", err))
			}
		}()
		app.logger.Info("user deleted consumer started", "topic", app.cfg.KafkaTopic)
	}

	app.logger.Info("tracker service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down tracker service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.cfg.HousekeepingInterval > 0 {
		app.housekeepingService.Stop()
	}

	if err := app.Close(); err != nil {
		return err
	}

	app.logger.Info("tracker service stopped")
	return nil
}

// Close releases the event transport and the database. Maintenance commands
// call it directly; Shutdown calls it after the server has drained.
func (app *Application) Close() error {
	if app.stopConsumer != nil {
		app.stopConsumer()
		if err := app.consumer.Close(); err != nil {
			app.logger.Error("error closing consumer", "error", err)
		}
		<-app.consumerDone
		app.stopConsumer = nil
	} else if app.consumer != nil {
		if err := app.consumer.Close(); err != nil {
			app.logger.Error("error closing consumer", "error", err)
		}
	}

	if err := app.events.Close(); err != nil {
		app.logger.Error("error closing event publisher", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	return nil
}

// ScanOrphans runs the orphan scan as the configured administrator, who must
// have a verified account.
func (app *Application) ScanOrphans(ctx context.Context, dryRun bool) (domain.OrphanReport, error) {
	if app.cfg.AdminEmail == "" {
		return domain.OrphanReport{}, errors.New("TRACKER_ADMIN_EMAIL is not set")
	}
	ctx = slogx.WithContext(ctx, app.logger)

	acct, err := app.db.Accounts().GetAccountByEmail(ctx, app.cfg.AdminEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.OrphanReport{}, fmt.Errorf("no account registered for %s", app.cfg.AdminEmail)
		}
		return domain.OrphanReport{}, err
	}

	actor := domain.Actor{UID: acct.ID, Email: acct.Email, IsAdmin: true}
	return app.cleanupService.ScanOrphans(ctx, actor, dryRun)
}

// Sweep removes expired codes, links, challenges and refresh tokens once.
func (app *Application) Sweep(ctx context.Context) service.SweepReport {
	return app.housekeepingService.Sweep(slogx.WithContext(ctx, app.logger))
}

func openStore(file string) (*sqlite.Store, error) {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", file)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	db, err := openStore(app.cfg.DatabaseFile)
	if err != nil {
		return err
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initMailer() {
	switch app.cfg.Mailer {
	case "smtp":
		app.mailer = mailx.NewSMTPMailer(app.cfg.SMTP)
		app.logger.Info("smtp mailer enabled", "host", app.cfg.SMTP.Host, "port", app.cfg.SMTP.Port)
	default:
		app.mailer = &mailx.LogMailer{Logger: app.logger}
		app.logger.Warn("log mailer enabled, mail bodies are written to the log")
	}
}

// initEvents picks the user deleted transport. The consumer is created here
// but only started by Run.
func (app *Application) initEvents() error {
	if len(app.cfg.KafkaBrokers) == 0 {
		app.events = eventx.NewLocalBus()
		return nil
	}

	publisher, err := eventx.NewKafkaPublisher(app.cfg.KafkaBrokers, app.cfg.KafkaTopic)
	if err != nil {
		return fmt.Errorf("failed to initialize kafka publisher: %w", err)
	}
	app.events = publisher
	app.logger.Info("kafka events enabled", "brokers", app.cfg.KafkaBrokers, "topic", app.cfg.KafkaTopic)
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.policy = service.NewApprovalPolicy(app.cfg.TrustedDomains, app.cfg.ReviewedDomains, app.cfg.AdminEmail)

	app.tokenService = &service.TokenService{
		KeyManager: app.keyManager,
		Store:      app.db,
		Issuer:     app.cfg.Issuer,
		AccessTTL:  jwtx.DefaultAccessTokenTTL,
		RefreshTTL: jwtx.DefaultRefreshTokenTTL,
	}
	app.twoFactorService = &service.TwoFactorService{
		Store:  app.db,
		Mailer: app.mailer,
		Tokens: app.tokenService,
	}
	app.accountService = &service.AccountService{
		Store:     app.db,
		Policy:    app.policy,
		Mailer:    app.mailer,
		Events:    app.events,
		Tokens:    app.tokenService,
		TwoFactor: app.twoFactorService,
		PublicURL: app.cfg.PublicURL,
	}
	app.approvalService = &service.ApprovalService{Store: app.db, Policy: app.policy}
	app.cleanupService = &service.CleanupService{Store: app.db, Policy: app.policy}
	app.taskService = &service.TaskService{Store: app.db}
	app.permissionService = &service.PermissionService{Store: app.db, Policy: app.policy}
	app.kpiService = &service.KPIService{Store: app.db, Permissions: app.permissionService}
	app.auditService = &service.AuditService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)

	switch ev := app.events.(type) {
	case *eventx.LocalBus:
		ev.Subscribe(app.cleanupService.Handler())
	case *eventx.KafkaPublisher:
		consumer, err := eventx.NewKafkaConsumer(
			app.cfg.KafkaBrokers,
			app.cfg.KafkaGroup,
			app.cfg.KafkaTopic,
			app.cleanupService.Handler(),
			app.logger,
		)
		if err != nil {
			// Deletions still publish; another replica in the group cleans up.
			app.logger.Error("failed to create user deleted consumer", slog.Any("error", err))
			return
		}
		app.consumer = consumer
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.VerifyRedirect = app.cfg.VerifyRedirect
	router.Policy = app.policy
	router.AccountService = app.accountService
	router.ApprovalService = app.approvalService
	router.TwoFactorService = app.twoFactorService
	router.TokenService = app.tokenService
	router.CleanupService = app.cleanupService
	router.HousekeepingService = app.housekeepingService
	router.TaskService = app.taskService
	router.KPIService = app.kpiService
	router.PermissionService = app.permissionService
	router.AuditService = app.auditService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
