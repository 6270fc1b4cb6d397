package main

import (
	"os"

	"github.com/dkaya/melodica/internal/pkg/logger"
	"github.com/dkaya/melodica/internal/server"
)

// @title Melodica API
// @version 1.0
// @description API for the Melodica music class booking platform
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://www.melodica.app/support
// @contact.email support@melodica.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
