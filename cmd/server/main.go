package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adisetya/lapakstore/internal/cart"
	"github.com/adisetya/lapakstore/internal/catalog"
	"github.com/adisetya/lapakstore/internal/chat"
	"github.com/adisetya/lapakstore/internal/config"
	"github.com/adisetya/lapakstore/internal/httpx"
	"github.com/adisetya/lapakstore/internal/imagehost"
	kafkax "github.com/adisetya/lapakstore/internal/kafka"
	"github.com/adisetya/lapakstore/internal/logx"
	"github.com/adisetya/lapakstore/internal/orders"
	"github.com/adisetya/lapakstore/internal/postgres"
	"github.com/adisetya/lapakstore/internal/redisx"
	"github.com/adisetya/lapakstore/internal/sheet"
	"github.com/adisetya/lapakstore/internal/state"
	syncx "github.com/adisetya/lapakstore/internal/sync"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger, err := logx.New(cfg.ServiceName, cfg.Environment)
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

	// Kafka producer (checkout -> orderworker)
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderPlaced, 1024)
	prod.Start(ctx)

	// App state, direhidrasi dari storage lokal
	st := state.NewStore()
	banners := &redisx.BannerStore{RDB: rdb}
	if urls, err := banners.LoadBanners(ctx); err == nil && len(urls) > 0 {
		st.SetBanners(urls)
	}

	// Sheet gateway + sync cycle
	gw := sheet.New(cfg.SheetEndpoint, logger)
	if !gw.Configured() {
		// Tanpa endpoint katalog harus tetap tampil; sync akan no-op.
		logger.Warn("sheet endpoint not configured, serving seed catalog only")
		st.SetProducts(catalog.Seed())
	}
	syncer := &syncx.Syncer{
		Fetch:    gw,
		Store:    st,
		Banners:  banners,
		Seed:     catalog.Seed(),
		Interval: cfg.SyncInterval,
		Log:      logger,
	}
	go syncer.Run(ctx)

	// HTTP surface
	router := httpx.NewRouter()
	(&httpx.CatalogHandler{Store: st}).Register(router)
	(&httpx.CartHandler{
		Carts:          &cart.Store{RDB: rdb},
		State:          st,
		Producer:       prod,
		Redis:          rdb,
		Log:            logger,
		Service:        cfg.ServiceName,
		WhatsAppNumber: cfg.WhatsAppNumber,
	}).Register(router)
	(&httpx.ChatHandler{Chat: chat.New(cfg.ChatURL), Log: logger}).Register(router)
	(&httpx.AdminHandler{
		Secret:  cfg.AdminSecret,
		State:   st,
		Sheet:   gw,
		Images:  imagehost.New(cfg.ImageHostURL, cfg.ImageHostKey, logger),
		Journal: &orders.Journal{DB: db},
		Redis:   rdb,
		Log:     logger,
	}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		logger.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // tutup inbox -> flush & close writer
	cancel()          // stop producer loop & syncer
	prod.WaitClosed() // drain
}
