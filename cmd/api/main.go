package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/devansh/hostelhub/internal/pkg/logger"
	"github.com/devansh/hostelhub/internal/server"
)

// @title HostelHub API
// @version 1.0
// @description REST API for hostel administration: enrollment, rooms, leaves, issues and payments

// @contact.name API Support
// @contact.email support@hostelhub.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Load .env if present; real environment variables still win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

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
