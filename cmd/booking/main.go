package main

import (
	"log"

	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/client"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/repository"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/wire"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/database"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/server"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, "booking", config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting booking service",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewBookingRepos(db, logger)
	management := client.NewManagementClient(config.Management, logger)

	app := wire.WireBooking(repos, management, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	server.Run(app.Router, config.App.Port)
}
