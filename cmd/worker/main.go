package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/khoahotran/favorite-food/adapters/event"
	"github.com/khoahotran/favorite-food/adapters/persistence"
	auditUC "github.com/khoahotran/favorite-food/internal/application/usecase/audit"
	"github.com/khoahotran/favorite-food/internal/config"
	"github.com/khoahotran/favorite-food/pkg/logger"
	"github.com/khoahotran/favorite-food/pkg/tracing"
)

func main() {
	fmt.Println("Starting Favorite Food Worker...")

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: cannot load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "favorite-food-worker")
	if err != nil {
		appLogger.Fatal("Cannot init tracer", err)
	}
	defer tp.Shutdown(context.Background())

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	recordEventUC := auditUC.NewRecordEventUseCase(persistence.NewPostgresAuditRepo(dbPool), appLogger)

	consumer := event.NewAccountEventConsumer(cfg, appLogger)
	defer func() {
		if err := consumer.Close(); err != nil {
			appLogger.Error("Failed to close Kafka reader", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Run(ctx, recordEventUC.Execute); err != nil {
		appLogger.Error("Worker stopped with error", err)
		return
	}
	appLogger.Info("Worker stopped")
}
