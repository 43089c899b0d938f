package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/corebank/accounts-service/internal/adapter/cache"
	"github.com/corebank/accounts-service/internal/adapter/events"
	"github.com/corebank/accounts-service/internal/adapter/http/controller"
	"github.com/corebank/accounts-service/internal/adapter/http/middleware"
	"github.com/corebank/accounts-service/internal/adapter/http/router"
	"github.com/corebank/accounts-service/internal/adapter/registry"
	"github.com/corebank/accounts-service/internal/adapter/repository/postgres"
	"github.com/corebank/accounts-service/internal/config"
	"github.com/corebank/accounts-service/internal/domain"
	"github.com/corebank/accounts-service/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := postgres.RunMigrations(migrateCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	accountRepo := postgres.NewAccountRepository(db)

	validator := registry.NewCustomerRegistryClient(cfg.CustomerServiceURL, &http.Client{
		Timeout: cfg.CustomerTimeout(),
	})

	var accountCache *cache.AccountCache
	if cfg.RedisAddr != "" {
		redisClient := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		accountCache = cache.NewAccountCache(redisClient, 30*time.Second)
	}

	var publisher domain.EventPublisher
	var kafkaPublisher *events.KafkaPublisher
	if cfg.KafkaBroker != "" {
		kafkaPublisher = events.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	accountService := services.NewAccountService(accountRepo, validator, accountCache, publisher)
	transactionService := services.NewTransactionService(accountRepo, accountCache, publisher)
	queryService := services.NewAccountQueryService(accountRepo, accountCache)

	mux := router.New(
		controller.NewAccountController(accountService, queryService),
		controller.NewTransactionController(transactionService),
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey),
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Printf("accounts service listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
