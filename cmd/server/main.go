package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storefront/storefront-api/internal/api"
	"github.com/storefront/storefront-api/internal/core/ports"
	"github.com/storefront/storefront-api/internal/core/service"
	"github.com/storefront/storefront-api/internal/infrastructure/catalog"
	mongodb "github.com/storefront/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storefront/storefront-api/internal/infrastructure/db/redis"
	"github.com/storefront/storefront-api/internal/infrastructure/directory"
	"github.com/storefront/storefront-api/internal/pkg/config"
	"github.com/storefront/storefront-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// Redis backs the session record slot and the cart store.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}
	defer rdb.Close()

	// The known-users directory: static demo accounts or a Mongo collection.
	var users ports.UserDirectory
	var mongoDatabase *mongo.Database
	switch cfg.DirectoryBackend {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect mongodb")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		dir := mongodb.NewUserDirectory(db)
		if err := dir.Seed(ctx, directory.DemoUsers()); err != nil {
			log.Warn().Err(err).Msg("user directory seeding failed")
		}
		users = dir
		mongoDatabase = db
	default:
		users = directory.NewStatic(directory.DemoUsers()...)
	}

	var verifier ports.CredentialVerifier = service.NoopVerifier{}
	if cfg.VerifyPasswords {
		verifier = service.BcryptVerifier{}
	}

	sessions := service.NewSessionService(users, redisdb.NewSessionStore(rdb), verifier, log)
	authz := service.NewEvaluator(sessions)
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, log)
	products := service.NewProductService(catalogClient, authz, log)
	carts := service.NewCartService(redisdb.NewCartStore(rdb), log)

	// Warm the catalog snapshot; a cold start is fine, the first list
	// retries the fetch.
	if err := products.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("initial catalog refresh failed")
	}

	router := api.NewRouter(api.Deps{
		Sessions:  sessions,
		Products:  products,
		Carts:     carts,
		Redis:     rdb,
		Mongo:     mongoDatabase,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("storefront API listening")
		if err := router.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := router.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown server")
	}
	log.Info().Msg("server stopped")
}
