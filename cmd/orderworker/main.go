package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/adisetya/lapakstore/internal/config"
	"github.com/adisetya/lapakstore/internal/dispatch"
	kafkax "github.com/adisetya/lapakstore/internal/kafka"
	"github.com/adisetya/lapakstore/internal/logx"
	"github.com/adisetya/lapakstore/internal/orders"
	"github.com/adisetya/lapakstore/internal/postgres"
	"github.com/adisetya/lapakstore/internal/redisx"
	"github.com/adisetya/lapakstore/internal/sheet"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger, err := logx.New(cfg.ServiceName+"-orderworker", cfg.Environment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB (order journal)
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Fatal("db schema", zap.Error(err))
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &dispatch.Service{
		Journal:     &orders.Journal{DB: db},
		Redis:       rdb,
		Sheet:       sheet.New(cfg.SheetEndpoint, logger),
		Log:         logger,
		ServiceName: cfg.ServiceName + "-orderworker",
	}

	group := getenv("ORDERWORKER_GROUP", "orderworker")
	workers := mustAtoi(os.Getenv("ORDERWORKER_WORKERS"), "4")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, orders.TopicOrderPlaced, workers, logger)

	go func() {
		logger.Info("order consumer started",
			zap.String("group", group),
			zap.String("topic", orders.TopicOrderPlaced),
			zap.Int("workers", workers))
		if err := cons.Start(ctx, svc.HandleOrderPlaced); err != nil {
			logger.Error("consumer exit", zap.Error(err))
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down consumer...")
	cancel()
	time.Sleep(500 * time.Millisecond)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
