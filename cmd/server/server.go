package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/targetgroup/backend/internal/config"
	"github.com/targetgroup/backend/internal/handler"
	"github.com/targetgroup/backend/internal/logging"
	"github.com/targetgroup/backend/internal/metrics"
	"github.com/targetgroup/backend/internal/notify"
	"github.com/targetgroup/backend/internal/repository"
	"github.com/targetgroup/backend/internal/service"
	"github.com/targetgroup/backend/internal/storage"
	"github.com/targetgroup/backend/internal/web"
	"github.com/targetgroup/backend/pkg/auth"
)

const (
	shutdownTimeout      = 5 * time.Second
	sessionPurgeInterval = time.Hour
)

func run(parent context.Context, cfgFile string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logging.Setup(cfg.Log, cfg.Env)

	pool, err := repository.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	sessions, err := repository.NewSessionStore(ctx, cfg.Redis, pool)
	if err != nil {
		return err
	}
	defer sessions.Close()

	store, err := storage.New(ctx, cfg.Uploads, cfg.S3)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	sender, err := notify.NewSender(cfg.Mail)
	if err != nil {
		return fmt.Errorf("mail: %w", err)
	}
	m := metrics.New()

	slideRepo := repository.NewPgHeroSlideRepository(pool)
	serviceRepo := repository.NewPgServiceRepository(pool)
	itemRepo := repository.NewPgServiceItemRepository(pool)
	benefitRepo := repository.NewPgServiceBenefitRepository(pool)
	teamRepo := repository.NewPgTeamMemberRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)
	userRepo := repository.NewPgUserRepository(pool)

	slideService := service.NewHeroSlideService(slideRepo)
	catalogService := service.NewCatalogService(serviceRepo, itemRepo, benefitRepo)
	teamService := service.NewTeamMemberService(teamRepo)
	contactService := service.NewContactService(contactRepo, notify.NewContactNotifier(sender, cfg.Mail.To))
	authService := service.NewAuthService(userRepo)
	sessionService := service.NewSessionService(sessions.SessionRepository, cfg.Session.TTL)
	pageService := service.NewPageService(slideRepo, serviceRepo, catalogService, teamRepo, contactRepo)

	go sessionService.RunPurger(ctx, sessionPurgeInterval)

	var limiter *handler.RateLimiter
	if cfg.RateLimit.PerMinute > 0 {
		limiter = handler.NewRateLimiter(cfg.RateLimit.PerMinute)
		defer limiter.Close()
	}

	authHandler := handler.NewAuthHandler(authService, sessionService, handler.AuthConfig{
		SessionSecret: cfg.Session.Secret,
		CookieSecure:  cfg.Session.CookieSecure,
	})
	api := &handler.API{
		Base:      handler.New(pool, cfg.Server.FrontendURL).WithSessionStore(sessions.Backend, sessions),
		Auth:      authHandler,
		Slides:    handler.NewHeroSlideHandler(slideService),
		Services:  handler.NewServiceHandler(catalogService),
		Team:      handler.NewTeamMemberHandler(teamService),
		Messages:  handler.NewMessageHandler(contactService),
		Contact:   handler.NewContactHandler(contactService, m),
		Upload:    handler.NewUploadHandler(store, m),
		Stats:     handler.NewStatsHandler(pageService),
		RateLimit: limiter,
	}
	pages, err := web.New(web.Deps{
		Pages:    pageService,
		Slides:   slideService,
		Catalog:  catalogService,
		Team:     teamService,
		Messages: contactService,
		Users:    authService,
		Sessions: authHandler,
	})
	if err != nil {
		return err
	}

	secret := auth.SessionSecretBytes(cfg.Session.Secret)
	mux := http.NewServeMux()
	api.Register(mux, auth.RequireSession(sessionService, secret))
	pages.Register(mux,
		auth.OptionalSession(sessionService, secret),
		auth.RequirePageSession(sessionService, secret, "/admin/login"),
		handler.CSRF(auth.SessionSecretBytes(cfg.CSRF.Key), cfg.Session.CookieSecure, cfg.CSRF.TrustedOrigins),
	)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.Server.StaticDir))))
	if local, ok := store.(*storage.LocalStorage); ok {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(local.BaseDir()))))
	}
	mux.Handle("GET /metrics", m.Handler())

	server := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: handler.Chain(m.Middleware(mux),
			handler.RequestID,
			handler.RequestLogger,
			handler.SecurityHeaders,
			api.Base.CORS,
		),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		return err
	}
	return nil
}
