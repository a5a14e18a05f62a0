package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	config "github.com/shuvajitmaitra/glamor-gallery/internal/cfg"
	v1Http "github.com/shuvajitmaitra/glamor-gallery/internal/delivery/v1/http"
	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/shuvajitmaitra/glamor-gallery/internal/infrastructure/kafka"
	"github.com/shuvajitmaitra/glamor-gallery/internal/repository/memory"
	redisRepo "github.com/shuvajitmaitra/glamor-gallery/internal/repository/redis"
	redisConv "github.com/shuvajitmaitra/glamor-gallery/internal/repository/redis/converter"
	"github.com/shuvajitmaitra/glamor-gallery/internal/usecase"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/clients"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/closer"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/logger"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	cl := closer.NewCloser(2 * time.Second)

	catalogRepo, err := initCatalog(cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize catalog")
		os.Exit(1)
	}

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	cl.Add(func(_ context.Context) error {
		return redisClient.Client.Close()
	})

	cartConv := redisConv.NewCartConverter()
	cartRepo := redisRepo.NewCartRepo(redisClient, cartConv, cfg.Redis, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	cl.Add(func(_ context.Context) error {
		return producer.Close()
	})

	// Недоступный брокер не мешает старту: события заказов — best effort.
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Warnf("kafka topic not ready, order events may be dropped: %v", err)
	}

	pricing := domain.Pricing{
		FreeShippingOver: cfg.Checkout.FreeShippingOver,
		ShippingFee:      cfg.Checkout.ShippingFee,
		TaxRate:          cfg.Checkout.TaxRate,
	}

	catalogUC := usecase.NewCatalogUC(catalogRepo, cfg.Catalog.LatestLimit, logger)
	cartUC := usecase.NewCartUC(catalogRepo, cartRepo, logger)
	checkoutUC := usecase.NewCheckoutUC(cartRepo, producer, pricing, cfg.Checkout.WhatsAppNumber, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(catalogUC, cartUC, checkoutUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		logger.Warnf("shutdown finished with errors: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

// initCatalog собирает каталог: из файла, если он задан, иначе встроенный.
func initCatalog(cfg *config.Config) (*memory.CatalogRepo, error) {
	if cfg.Catalog.DataFile != "" {
		return memory.NewCatalogRepoFromFile(cfg.Catalog.DataFile)
	}

	return memory.NewCatalogRepo(memory.SeedProducts()), nil
}
