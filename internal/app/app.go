package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MrBrad8989/gta-events-bot/internal/config"
	"github.com/MrBrad8989/gta-events-bot/internal/discord"
	"github.com/MrBrad8989/gta-events-bot/internal/handler"
	"github.com/MrBrad8989/gta-events-bot/internal/metrics"
	"github.com/MrBrad8989/gta-events-bot/internal/middleware"
	"github.com/MrBrad8989/gta-events-bot/internal/notification"
	"github.com/MrBrad8989/gta-events-bot/internal/repository"
	"github.com/MrBrad8989/gta-events-bot/internal/router"
	"github.com/MrBrad8989/gta-events-bot/internal/scheduler"
	"github.com/MrBrad8989/gta-events-bot/internal/service"
	"github.com/MrBrad8989/gta-events-bot/internal/storage"
	"github.com/bwmarrin/discordgo"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	session    *discordgo.Session
	router     *discord.Router
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"GTAEventsBot",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
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
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.New(registry)

	uploads, err := storage.NewDiskStore(a.cfg.Uploads.Dir, a.cfg.Uploads.MaxSize)
	if err != nil {
		return fmt.Errorf("init upload store: %w", err)
	}

	alerter, err := notification.NewTelegramAlerter(a.cfg.Telegram.BotToken, a.cfg.Telegram.StaffChatID, a.log)
	if err != nil {
		return fmt.Errorf("init staff alerter: %w", err)
	}

	session, err := discord.NewSession(a.cfg.Discord.Token)
	if err != nil {
		return err
	}
	a.session = session

	platform := discord.NewPlatform(session, discord.Config{
		GuildID:               a.cfg.Discord.GuildID,
		ModerationChannelID:   a.cfg.Discord.ModerationChannelID,
		AnnouncementChannelID: a.cfg.Discord.AnnouncementChannelID,
		TicketCategoryID:      a.cfg.Discord.TicketCategoryID,
		SupportRoleID:         a.cfg.Discord.SupportRoleID,
	}, uploads, a.log)

	userService := service.NewUserService(userRepo)
	submissionService := service.NewSubmissionService(eventRepo, userRepo, uploads, platform, alerter, recorder, a.log)
	moderationService := service.NewModerationService(eventRepo, userRepo, platform, alerter, recorder, a.log)
	interestService := service.NewInterestService(eventRepo, platform, recorder, a.log)
	reminderService := service.NewReminderService(eventRepo, platform, recorder, service.ReminderWindow{
		Lookback:  a.cfg.Scheduler.Lookback,
		Lookahead: a.cfg.Scheduler.Lookahead,
	}, a.log)

	a.router = discord.NewRouter(moderationService, interestService, a.cfg.Discord.ModeratorRoleID, a.log)

	a.scheduler = scheduler.New(
		reminderService,
		uploads,
		scheduler.Options{
			Interval:  a.cfg.Scheduler.Interval,
			PurgeHour: a.cfg.Scheduler.PurgeHour,
			MaxAge:    a.cfg.Uploads.MaxAge,
		},
		a.log,
	)

	h := handler.NewHandler(submissionService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.APIKey(a.cfg.API.Key),
		metrics.Handler(registry),
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

	if err := discord.Connect(a.session, a.router, a.log); err != nil {
		if cerr := a.db.Master.Close(); cerr != nil {
			a.log.Warn("failed to close db", logger.String("error", cerr.Error()))
		}
		return err
	}

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case runErr = <-errCh:
	}

	// stops the scheduler when the server failed on its own
	stop()

	return errors.Join(runErr, a.shutdown())
}

// shutdown releases everything even when one step fails. The scheduler is
// drained before the session and the DB go away.
func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	var errs []error

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")
	}

	select {
	case <-a.scheduler.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "scheduler drained")
	case <-shutdownCtx.Done():
		a.log.Warn("scheduler still running at shutdown deadline")
	}

	if err := a.session.Close(); err != nil {
		a.log.Warn("failed to close discord session", logger.String("error", err.Error()))
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "discord session closed")
	}

	if err := a.db.Master.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close db: %w", err))
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
