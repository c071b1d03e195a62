package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/logger"

	"github.com/unifyevents/cartgate/internal/config"
	"github.com/unifyevents/cartgate/internal/handler"
	"github.com/unifyevents/cartgate/internal/middleware"
	"github.com/unifyevents/cartgate/internal/notification"
	"github.com/unifyevents/cartgate/internal/router"
	"github.com/unifyevents/cartgate/internal/scheduler"
	"github.com/unifyevents/cartgate/internal/service"
	"github.com/unifyevents/cartgate/internal/session"
	"github.com/unifyevents/cartgate/internal/upstream"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"cartgate",
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

func (a *App) initServices() error {
	client := upstream.NewClient(a.cfg.Upstream, a.log)

	constraintGW := upstream.NewConstraintGateway(client)
	eventGW := upstream.NewEventGateway(client)
	slotGW := upstream.NewSlotGateway(client)
	cartGW := upstream.NewCartGateway(client)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	sessions := session.NewStore(a.cfg.Session.TTL)

	resolver := service.NewResolver(
		constraintGW,
		service.UnknownPolicy(a.cfg.Engine.ConstraintPolicy),
		a.log,
	)
	cartService := service.NewCartService(cartGW, slotGW, resolver, n, a.log)
	flowService := service.NewFlowService(resolver, slotGW, cartService, a.log)
	eventService := service.NewEventService(eventGW, slotGW)

	a.scheduler = scheduler.New(
		sessions,
		a.cfg.Session.SweepInterval,
		a.log,
	)

	h := handler.NewHandler(eventService, flowService, cartService, sessions)
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

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("upstream", a.cfg.Upstream.BaseURL),
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

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
