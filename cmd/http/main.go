package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tokogrand/pos-register/internal/adapters/config"
	"github.com/tokogrand/pos-register/internal/adapters/http"
	"github.com/tokogrand/pos-register/internal/adapters/http/controllers"
	"github.com/tokogrand/pos-register/internal/adapters/mongo"
	"github.com/tokogrand/pos-register/internal/adapters/mongo/repository"
	"github.com/tokogrand/pos-register/internal/adapters/outbox"
	"github.com/tokogrand/pos-register/internal/adapters/printer"
	"github.com/tokogrand/pos-register/internal/adapters/rabbitmq"
	"github.com/tokogrand/pos-register/internal/adapters/redis"
	"github.com/tokogrand/pos-register/internal/core/domain"
	"github.com/tokogrand/pos-register/internal/core/logger"
	"github.com/tokogrand/pos-register/internal/core/receipt"
	"github.com/tokogrand/pos-register/internal/core/service"
)

// @title       POS Register API
// @version     1.0
// @description Point-of-sale register and stock ledger API

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database connection
	mongoClient, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer mongo.Disconnect(mongoClient)
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// initialize rabbitmq connection
	broker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer broker.Close()
	logger.Info(ctx, "Connected to RabbitMQ", nil)

	// initialize database and repos
	database := mongoClient.Database(cfg.Mongo.Database)
	ledgerRepository := repository.NewProductRepository(database)
	outboxRepository := repository.NewOutboxRepository(database)
	saleRepository := repository.NewSaleRepository(database, outboxRepository)
	txManager := mongo.NewTransactionManager(mongoClient)

	// caches and rate limiter
	productCache := redis.NewCache[domain.Product](redisClient, "product-cache")
	idempotencyCache := redis.NewCache[service.IdempotencyEntry[domain.Sale]](redisClient, "idempotency-cache")
	rateLimiter := redis.NewRateLimiter(redisClient)

	// outbox handler (uses cancellable context)
	outboxHandler := outbox.NewHandler(outboxRepository, broker, cfg.Outbox)
	go outboxHandler.Start(ctx)
	logger.Info(ctx, "Outbox handler started", map[string]any{"interval": cfg.Outbox.Interval.String(), "batch_size": cfg.Outbox.BatchSize})

	// receipt devices
	socketPrinter := printer.NewSocketPrinter(cfg.Printer)
	receiptStore := printer.NewFileStore(cfg.Register.ReceiptsDir)
	shop := receipt.Shop{
		Name:           cfg.Shop.Name,
		AddressLines:   cfg.Shop.AddressLines,
		Phone:          cfg.Shop.Phone,
		CurrencyPrefix: cfg.Shop.CurrencyPrefix,
	}

	// services
	productService := service.NewProductService(ledgerRepository, productCache)
	registerService := service.NewRegisterService(ledgerRepository, cfg.Register.DebounceWindow)
	receiptService := service.NewReceiptService(socketPrinter, receiptStore, saleRepository, shop)
	idempotencyService := service.NewIdempotencyService(idempotencyCache, 15*time.Minute, 1*time.Second, 10*time.Second)
	checkoutService := service.NewCheckoutService(
		registerService,
		productService,
		ledgerRepository,
		saleRepository,
		txManager,
		receiptService,
		broker,
		idempotencyService,
		cfg.Register.LowStockThreshold,
	)

	// controllers
	productController := controllers.NewProductController(productService)
	registerController := controllers.NewRegisterController(registerService, checkoutService)
	saleController := controllers.NewSaleController(saleRepository, receiptService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "mongodb", Check: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
		{Name: "rabbitmq", Check: func(ctx context.Context) error { return broker.HealthCheck() }},
	})

	// router
	router := http.NewRouter(healthController, productController, registerController, saleController, rateLimiter)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]interface{}{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	err = router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
