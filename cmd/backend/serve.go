package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/hairizuan-noorazman/showcase/catalog"
	"github.com/hairizuan-noorazman/showcase/cmd/backend/handlers"
	"github.com/hairizuan-noorazman/showcase/database"
	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/storage"
	"github.com/hairizuan-noorazman/showcase/upload"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewLogrusLogger(cfg.Log.Level)
	log.Info(ctx, "starting server", map[string]interface{}{
		"version": Version,
		"commit":  Commit,
		"date":    BuildDate,
	})

	db, sqlDB, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	log.Info(ctx, "database connected", map[string]interface{}{
		"driver":   cfg.Database.Driver,
		"host":     cfg.Database.Host,
		"database": cfg.Database.Database,
	})

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(sqlDB, cfg.Database.Driver, cfg.Database.MigrationsPath); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info(ctx, "migrations applied", nil)
	}

	gateway := catalog.NewSQLGateway(db, log)

	if cfg.Seed.Enabled {
		if _, err := seedCatalog(ctx, gateway, cfg.Seed.File, log); err != nil {
			// a partially seeded catalog is still servable
			log.Error(ctx, "failed to seed catalog", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	blob := setupStorage(ctx, cfg.Storage, log)
	uploader := upload.NewService(blob, cfg.Storage.MaxUploadSize, log)

	router := mux.NewRouter()
	handlers.Register(router, gateway, uploader, log)

	if local, ok := blob.(*storage.LocalStorage); ok {
		router.PathPrefix("/uploads/").Handler(local.Handler()).Methods(http.MethodGet, http.MethodHead)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handlers.Wrap(router, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info(ctx, "server listening", map[string]interface{}{
			"address": addr,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "shutting down server", nil)

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info(ctx, "server stopped", nil)
	return nil
}

func openDatabase(cfg DatabaseConfig) (*gorm.DB, *sql.DB, error) {
	db, err := database.Connect(cfg.DatabaseSettings())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	return db, sqlDB, nil
}

// setupStorage returns nil when the backend is not usable; uploads then fail
// with a configuration error while the catalog keeps serving.
func setupStorage(ctx context.Context, cfg StorageConfig, log logger.Logger) storage.BlobStorage {
	blob, err := storage.NewBlobStorage(ctx, cfg.StorageSettings())
	if err != nil {
		log.Warn(ctx, "image storage unavailable, uploads disabled", map[string]interface{}{
			"type":  cfg.Type,
			"error": err.Error(),
		})
		return nil
	}

	if s3Store, ok := blob.(*storage.S3Storage); ok && cfg.S3EnsureBucket {
		created, err := s3Store.EnsureBucket(ctx)
		if err != nil {
			log.Warn(ctx, "failed to ensure storage bucket", map[string]interface{}{
				"bucket": cfg.S3Bucket,
				"error":  err.Error(),
			})
		} else if created {
			log.Info(ctx, "storage bucket created", map[string]interface{}{
				"bucket": cfg.S3Bucket,
			})
		}
	}

	log.Info(ctx, "image storage ready", map[string]interface{}{
		"type": cfg.Type,
	})
	return blob
}
