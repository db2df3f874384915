// main.go
package main

import (
	"log"

	"movie-swiper/cmd"
	"movie-swiper/internal/data/repository"
	"movie-swiper/internal/wire"
	"movie-swiper/pkg/database"
	"movie-swiper/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
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

	// Row-scoped pool: restricted role, RLS policies apply
	userDB, err := database.InitUserDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer userDB.Close()

	// Privileged pool: bypasses row-level policies, handed only to the seeder
	adminDB, err := database.InitAdminDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to admin database", zap.Error(err))
	}
	defer adminDB.Close()

	logger.Info("Database connected successfully")

	// One repository set per capability
	repos := repository.NewRepository(userDB, logger)
	adminRepos := repository.NewRepository(adminDB, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, adminRepos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
