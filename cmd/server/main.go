package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/favorite-food/adapters/event"
	httpAdapter "github.com/khoahotran/favorite-food/adapters/http"
	"github.com/khoahotran/favorite-food/adapters/persistence"
	"github.com/khoahotran/favorite-food/adapters/persistence/inmemory"
	"github.com/khoahotran/favorite-food/internal/application/service"
	auditUC "github.com/khoahotran/favorite-food/internal/application/usecase/audit"
	authUC "github.com/khoahotran/favorite-food/internal/application/usecase/auth"
	profileUC "github.com/khoahotran/favorite-food/internal/application/usecase/profile"
	"github.com/khoahotran/favorite-food/internal/config"
	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/internal/domain/profile"
	"github.com/khoahotran/favorite-food/internal/domain/session"
	"github.com/khoahotran/favorite-food/internal/domain/user"
	"github.com/khoahotran/favorite-food/pkg/auth"
	"github.com/khoahotran/favorite-food/pkg/logger"
	"github.com/khoahotran/favorite-food/pkg/tracing"
)

type stores struct {
	users     user.Repository
	profiles  profile.Repository
	sessions  session.Store
	auditLog  audit.Repository
	publisher service.EventPublisher
	closers   []func()
}

func main() {
	fmt.Println("Start Favorite Food API Server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: cannot load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if cfg.Auth.JWTSecret == "" {
		appLogger.Fatal("JWT secret is not configured", errors.New("JWT_SECRET is empty"))
	}

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "favorite-food-api")
	if err != nil {
		appLogger.Fatal("Cannot init tracer", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			appLogger.Error("Failed to shutdown tracer provider", err)
		}
	}()

	st, err := openStores(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot open storage", err, zap.String("driver", cfg.Storage.Driver))
	}
	defer func() {
		for i := len(st.closers) - 1; i >= 0; i-- {
			st.closers[i]()
		}
	}()

	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	signUpUseCase := authUC.NewSignUpUseCase(st.users, st.sessions, jwtSvc, st.publisher, appLogger)
	signInUseCase := authUC.NewSignInUseCase(st.users, st.sessions, jwtSvc, st.publisher, appLogger)
	signOutUseCase := authUC.NewSignOutUseCase(st.sessions, st.publisher, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(st.profiles, st.publisher, appLogger)
	listEventsUseCase := auditUC.NewListEventsUseCase(st.auditLog, appLogger)

	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		AuthHandler:    httpAdapter.NewAuthHandler(signUpUseCase, signInUseCase, signOutUseCase, appLogger),
		ProfileHandler: httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		AccountHandler: httpAdapter.NewAccountHandler(listEventsUseCase, appLogger),
		JWTService:     jwtSvc,
		Sessions:       st.sessions,
		Logger:         appLogger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrCh := make(chan error, 1)
	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	select {
	case <-ctx.Done():
		appLogger.Info("Shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			appLogger.Error("Server failed", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Graceful shutdown failed", err)
	}
	appLogger.Info("Server stopped")
}

func openStores(cfg config.Config, log logger.Logger) (*stores, error) {
	switch cfg.Storage.Driver {
	case "memory":
		log.Warn("Using in-memory storage, data is lost on restart")
		events := inmemory.NewAuditLog()
		return &stores{
			users:     inmemory.NewUserRepo(),
			profiles:  inmemory.NewProfileRepo(),
			sessions:  inmemory.NewSessionStore(),
			auditLog:  events,
			publisher: events,
		}, nil
	case "", "postgres":
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	st := &stores{}
	fail := func(err error) (*stores, error) {
		for i := len(st.closers) - 1; i >= 0; i-- {
			st.closers[i]()
		}
		return nil, err
	}

	if err := persistence.RunMigrations(cfg.DB.Migrations, cfg.DB.DSN, log); err != nil {
		return fail(err)
	}

	dbPool, err := persistence.NewPostgresPool(cfg, log)
	if err != nil {
		return fail(err)
	}
	st.closers = append(st.closers, dbPool.Close)

	redisClient, err := persistence.NewRedisClient(cfg, log)
	if err != nil {
		return fail(err)
	}
	st.closers = append(st.closers, func() { redisClient.Close() })

	kafkaClient, err := event.NewKafkaProducerClient(cfg, log)
	if err != nil {
		return fail(err)
	}
	st.closers = append(st.closers, kafkaClient.Close)

	st.users = persistence.NewPostgresUserRepo(dbPool, log)
	st.profiles = persistence.NewPostgresProfileRepo(dbPool, log)
	st.sessions = persistence.NewRedisSessionStore(redisClient)
	st.auditLog = persistence.NewPostgresAuditRepo(dbPool)
	st.publisher = kafkaClient
	return st, nil
}
