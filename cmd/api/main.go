package main

import (
	"os"

	"github.com/yigit/collegehub/internal/pkg/logger"
	"github.com/yigit/collegehub/internal/server"
)

// @title College Directory API
// @version 1.0
// @description Colleges, reviews and favorites for the college dashboard.

// @host localhost:5000
// @BasePath /api
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
