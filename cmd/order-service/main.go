package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/client"
	"github.com/bu6wer8/student-services-V4-Docker/internal/config"
	"github.com/bu6wer8/student-services-V4-Docker/internal/delivery/http/router"
	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/cache"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/kafka"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/metrics"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/migrate"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/postgres"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/postgres/repository"
	"github.com/bu6wer8/student-services-V4-Docker/internal/logger"
	"github.com/bu6wer8/student-services-V4-Docker/internal/pricing"
	customerusecase "github.com/bu6wer8/student-services-V4-Docker/internal/usecase/customer"
	orderusecase "github.com/bu6wer8/student-services-V4-Docker/internal/usecase/order"
	"github.com/joho/godotenv"
)

const expirySweepInterval = 10 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not found, relying on environment")
	}

	cfg := config.MustLoad()

	if err := logger.Initialize(cfg.LogConfig.LogLevel); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	orderRepo := repository.NewDefaultOrderRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	customerRepo := repository.NewDefaultCustomerRepository(db)
	allocator := repository.NewDefaultOrderNumberAllocator(db)

	pricingEngine := pricing.NewEngine(cfg.Pricing.Tables())

	gateway := client.NewHTTPGatewayClient(cfg.Gateway.BaseURL, cfg.Gateway.APIKey, cfg.Gateway.Timeout)

	var publisher *kafka.OrderEventPublisher
	if cfg.KafkaService.Host != "" {
		publisher = kafka.NewOrderEventPublisher(
			[]string{net.JoinHostPort(cfg.KafkaService.Host, cfg.KafkaService.Port)},
			cfg.KafkaService.Topic,
		)
		defer publisher.Close()
	}

	orderMetrics := metrics.NewOrderMetrics()

	quoteCache := cache.NewMemoryStore(time.Minute)
	defer quoteCache.Close()

	// A nil *kafka.OrderEventPublisher must stay a nil interface so the
	// usecase's nil-guard holds.
	var eventSink domain.OrderEventPublisher
	if publisher != nil {
		eventSink = publisher
	}

	orderUC := orderusecase.NewDefaultOrderUsecase(
		orderRepo,
		paymentRepo,
		allocator,
		pricingEngine,
		gateway,
		eventSink,
		orderMetrics,
		cfg.Orders.ExpiryWindow,
	)
	customerUC := customerusecase.NewDefaultCustomerUsecase(customerRepo, pricingEngine)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go runExpirySweep(ctx, orderUC)

	addr := net.JoinHostPort(cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router.New(orderUC, customerUC, quoteCache, cfg.Orders.QuoteCacheTTL),
	}

	go func() {
		logger.Get().Infow("order service listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Get().Fatalw("http server failed", "error", err.Error())
		}
	}()

	<-ctx.Done()
	logger.Get().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Get().Errorw("graceful shutdown failed", "error", err.Error())
	}

	os.Exit(0)
}

func runExpirySweep(ctx context.Context, uc orderusecase.OrderUsecase) {
	ticker := time.NewTicker(expirySweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := uc.CancelExpiredOrders(ctx); err != nil {
				logger.Get().Errorw("expired order sweep failed", "error", err.Error())
			}
		}
	}
}
