package main

import (
	"context"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"net/http"
	"os"
	"os/signal"
	"sneaker-shop/internal/api"
	"sneaker-shop/internal/cache"
	"sneaker-shop/internal/config"
	"sneaker-shop/internal/entity"
	"sneaker-shop/internal/metrics"
	"sneaker-shop/internal/producer"
	"sneaker-shop/internal/repository"
	"sneaker-shop/internal/service"
	"sneaker-shop/migrations"
	"syscall"
	"time"
)

func loadCatalog(ctx context.Context, cfg *config.Config) []entity.Sneaker {
	if cfg.CatalogDSN == "" {
		return repository.DefaultSneakers
	}

	db, err := config.ConnectDB(cfg.CatalogDSN, 10)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to catalog DB")
	}
	defer db.Close()

	if err := migrations.AutoMigrateSneakers(3, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate sneakers table")
	}
	if err := migrations.SeedSneakers(ctx, db, repository.DefaultSneakers); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed sneakers table")
	}

	sneakers, err := repository.NewSneakerRepository(db).GetSneakers(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalog")
	}
	log.Info().Msgf("Loaded %d sneakers from catalog DB", len(sneakers))
	return sneakers
}

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := context.Background()
	cfg := config.Load()

	catalogRepo := repository.NewCatalogRepository(loadCatalog(ctx, cfg))
	userRepo := repository.NewUserRepository()
	if cfg.SeedDemoUser {
		if _, err := userRepo.CreateUser(entity.User{UserName: "Ivan", Email: "123", Password: "123"}); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo user")
		}
	}

	publisher := service.NoopPublisher
	if len(cfg.KafkaBrokers) > 0 {
		eventProducer := producer.NewEventProducer(config.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
		defer eventProducer.Close()
		publisher = eventProducer
	}

	var catalogCache service.CatalogCache
	if cfg.RedisAddr != "" {
		rdb, err := config.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, serving catalog without cache")
		} else {
			defer rdb.Close()
			catalogCache = cache.NewCatalogCache(rdb, cfg.CacheTTL)
		}
	}

	tokens := service.NewTokenManager(service.TokenConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      cfg.JWTTTL,
	})

	catalogService := service.NewCatalogService(catalogRepo, catalogCache)
	catalogService.PreWarmCache(ctx)

	handlers := api.NewHandlers(
		service.NewAuthService(userRepo, tokens, publisher),
		catalogService,
		service.NewFavoritesService(userRepo, catalogRepo, publisher),
		service.NewCartService(userRepo, catalogRepo, publisher),
	)
	e := api.NewRouter(handlers, tokens, metrics.New())

	// Start server
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}
