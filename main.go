// main.go
package main

import (
	"context"
	"log"
	"time"

	"agro-marketplace/cmd"
	"agro-marketplace/internal/data/repository"
	"agro-marketplace/internal/wire"
	"agro-marketplace/pkg/database"
	"agro-marketplace/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.Log, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to both document stores
	store, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	indexCtx, cancel := context.WithTimeout(context.Background(), config.Database.ConnectTimeout)
	if err := store.EnsureIndexes(indexCtx); err != nil {
		logger.Warn("Failed to ensure indexes", zap.Error(err))
	}
	cancel()

	logger.Info("Database connected successfully",
		zap.String("commerce_db", config.Database.CommerceName),
		zap.String("ai_db", config.Database.AIName),
	)

	repos := repository.NewRepository(store, logger)

	app := wire.Wiring(repos, store, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
