package main

// @title FindHelp Service API
// @version 1.0.0
// @description Backend for a harm-reduction help finder. Serves emergency numbers, a static catalog of NYC support locations, map sessions with graceful location resolution, and an anonymous click ledger.
// @description
// @description Main features:
// @description - Emergency numbers and informational resource links
// @description - Place catalog with category filtering
// @description - Map sessions: selection, filter toggling, tile fallback, directions links
// @description - Anonymous device identity and per-device click ledger
// @description - Click statistics aggregated from the archive

// @contact.name API Support
// @contact.email support@findhelp-service.org

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/findhelp-service/docs/swagger"
	"github.com/findhelp-service/internal/config"
	httpDelivery "github.com/findhelp-service/internal/delivery/http"
	"github.com/findhelp-service/internal/delivery/http/handler"
	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
	"github.com/findhelp-service/internal/infrastructure/geoip"
	"github.com/findhelp-service/internal/infrastructure/navigation"
	"github.com/findhelp-service/internal/pkg/logger"
	"github.com/findhelp-service/internal/repository/cache"
	"github.com/findhelp-service/internal/repository/catalog"
	"github.com/findhelp-service/internal/repository/kv"
	"github.com/findhelp-service/internal/repository/postgres"
	redisRepo "github.com/findhelp-service/internal/repository/redis"
	"github.com/findhelp-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting FindHelp Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	// 3. Open the local key-value store. Falls back to an in-memory store so
	// a broken disk never takes the service down.
	kvStore := openKVStore(cfg, log)
	defer func() {
		if err := kvStore.Close(); err != nil {
			log.Error("Failed to close key-value store", zap.Error(err))
		}
	}()

	// 4. Connect to Redis (optional: without it clicks stay local-only)
	var streamRepo repository.StreamRepository
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, click events will not be published", zap.Error(err))
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)
	}

	// 5. Connect to PostgreSQL (optional: only backs the stats endpoint)
	var archiveRepo repository.ArchiveRepository
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Warn("PostgreSQL unavailable, click stats disabled", zap.Error(err))
	} else {
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		archiveRepo = postgres.NewInteractionRepository(db, log)
	}

	// 6. Initialize repositories and providers
	catalogRepo := catalog.NewStaticRepository(log)
	geoProvider := geoip.NewClient(&cfg.Geolocation, log)
	directions := navigation.NewLinkBuilder()

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer loadCancel()

	catalogUC, err := usecase.NewCatalogUseCase(loadCtx, catalogRepo, log)
	if err != nil {
		log.Fatal("Failed to load place catalog", zap.Error(err))
	}

	referenceUC, err := usecase.NewReferenceUseCase(loadCtx, catalogRepo, log)
	if err != nil {
		log.Fatal("Failed to load reference data", zap.Error(err))
	}

	identityUC := usecase.NewIdentityUseCase(kvStore, log)
	languageUC := usecase.NewLanguageUseCase(kvStore, domain.Language(cfg.Language.Default), log)

	// Language changes are pushed, not polled; the audit listener is the
	// process-level subscriber.
	langChanges, langCancel := languageUC.Subscribe()
	defer langCancel()
	go func() {
		for lang := range langChanges {
			log.Info("Language change broadcast", zap.String("language", string(lang)))
		}
	}()

	var publishStreams repository.StreamRepository
	if cfg.Recorder.PublishEvents {
		publishStreams = streamRepo
	}
	recorderUC := usecase.NewRecorderUseCase(kvStore, publishStreams, cfg.Recorder.QueueSize, log)
	defer recorderUC.Close()

	resolverUC := usecase.NewResolverUseCase(geoProvider, &cfg.Resolver, log)
	sessionUC := usecase.NewSessionUseCase(catalogUC, recorderUC, resolverUC, directions, log)
	defer sessionUC.CloseAll()

	var statsUC *usecase.StatsUseCase
	if archiveRepo != nil {
		statsUC = usecase.NewStatsUseCase(archiveRepo, log)
	}

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	referenceHandler := handler.NewReferenceHandler(referenceUC, log)
	catalogHandler := handler.NewCatalogHandler(catalogUC, log)
	deviceHandler := handler.NewDeviceHandler(identityUC, log)
	languageHandler := handler.NewLanguageHandler(languageUC, log)
	sessionHandler := handler.NewSessionHandler(sessionUC, log)
	interactionHandler := handler.NewInteractionHandler(catalogUC, recorderUC, statsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		referenceHandler,
		catalogHandler,
		deviceHandler,
		languageHandler,
		sessionHandler,
		interactionHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

// openKVStore opens the configured local store, degrading to memory.
func openKVStore(cfg *config.Config, log *zap.Logger) repository.KVRepository {
	switch cfg.Storage.Driver {
	case "sqlite":
		store, err := kv.NewSQLiteRepository(cfg.Storage.SQLitePath)
		if err != nil {
			log.Warn("Failed to open sqlite store, using in-memory store",
				zap.String("path", cfg.Storage.SQLitePath),
				zap.Error(err))
			return kv.NewMemoryRepository()
		}
		log.Info("SQLite store opened", zap.String("path", cfg.Storage.SQLitePath))
		return store
	case "redis":
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Warn("Failed to open redis store, using in-memory store", zap.Error(err))
			return kv.NewMemoryRepository()
		}
		return kv.NewRedisRepository(redisClient.Client())
	default:
		log.Warn("Unknown storage driver, using in-memory store",
			zap.String("driver", cfg.Storage.Driver))
		return kv.NewMemoryRepository()
	}
}
