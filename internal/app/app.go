package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/stride-backend/internal/adapter/email"
	"github.com/heartmarshall/stride-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/stride-backend/internal/adapter/postgres/activity"
	auditrepo "github.com/heartmarshall/stride-backend/internal/adapter/postgres/audit"
	communityrepo "github.com/heartmarshall/stride-backend/internal/adapter/postgres/community"
	membershiprepo "github.com/heartmarshall/stride-backend/internal/adapter/postgres/membership"
	otprepo "github.com/heartmarshall/stride-backend/internal/adapter/postgres/otp"
	postrepo "github.com/heartmarshall/stride-backend/internal/adapter/postgres/post"
	userrepo "github.com/heartmarshall/stride-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/stride-backend/internal/adapter/storage"
	"github.com/heartmarshall/stride-backend/internal/auth"
	"github.com/heartmarshall/stride-backend/internal/config"
	"github.com/heartmarshall/stride-backend/internal/metrics"
	"github.com/heartmarshall/stride-backend/internal/service/activity"
	authsvc "github.com/heartmarshall/stride-backend/internal/service/auth"
	"github.com/heartmarshall/stride-backend/internal/service/community"
	"github.com/heartmarshall/stride-backend/internal/service/identity"
	"github.com/heartmarshall/stride-backend/internal/service/post"
	"github.com/heartmarshall/stride-backend/internal/service/relationship"
	"github.com/heartmarshall/stride-backend/internal/service/upload"
	"github.com/heartmarshall/stride-backend/internal/service/user"
	"github.com/heartmarshall/stride-backend/internal/transport/middleware"
	"github.com/heartmarshall/stride-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler, cleanup, err := NewHandler(ctx, cfg, logger, pool)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// NewHandler wires repositories, services and routes into the API handler
// with its middleware chain. The returned cleanup releases background resources.
func NewHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *pgxpool.Pool) (http.Handler, func(), error) {
	txm := postgres.NewTxManager(db)

	users := userrepo.New(db)
	communities := communityrepo.New(db)
	posts := postrepo.New(db)
	activities := activityrepo.New(db)
	memberships := membershiprepo.New(db)
	otps := otprepo.New(db)
	audits := auditrepo.New(db)

	collector := metrics.NewCollector(true)
	resolver := identity.NewResolver(logger, users, communities, posts)

	sender, err := email.NewSender(logger, cfg.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("email sender: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, otps, txm, jwtManager, sender, cfg.Auth, auth.GenerateOTP)

	relations := relationship.NewService(logger, resolver, memberships, audits, txm, collector)
	log := logger.With("component", "http")

	handlers := rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, log),
		User:      rest.NewUserHandler(user.NewService(logger, users), log),
		Activity:  rest.NewActivityHandler(activity.NewService(logger, activities, audits, txm), log),
		Community: rest.NewCommunityHandler(community.NewService(logger, communities, resolver, audits, txm), relations, log),
		Post:      rest.NewPostHandler(post.NewService(logger, posts, communities, resolver, audits, txm), relations, log),
		Metrics:   collector.Handler(),
	}

	var components []rest.Component
	if cfg.Storage.Enabled() {
		store, err := storage.NewS3Store(ctx, cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("object storage: %w", err)
		}
		handlers.Upload = rest.NewUploadHandler(upload.NewService(logger, store, cfg.Storage), cfg.Storage.MaxUploadBytes, log)
		components = append(components, rest.Component{Name: "storage", Check: store, Optional: true})
	} else {
		logger.Warn("object storage not configured, upload routes disabled")
	}
	handlers.Health = rest.NewHealthHandler(db, Version, components...)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		mws = append(mws, limiter.Limit(cfg.RateLimit.RequestsPerMin))
		handlers.AuthLimits = limiter.Limit(cfg.RateLimit.AuthPerMin)
	}
	mws = append(mws, middleware.Auth(authService))

	mux := rest.NewRouter(handlers)
	return middleware.Chain(mws...)(collector.InstrumentHandler(mux)), limiter.Stop, nil
}
