package main

import (
	"context"
	"flag"
	"os"

	"github.com/yigit/courseadmin/internal/pkg/logger"
	"github.com/yigit/courseadmin/internal/server"
)

// @title Course Admin API
// @version 1.0
// @description Administrative dashboard backend for courses, invoices and customers

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the yaml config file")
	envPath := flag.String("env", ".env", "path to an optional .env file")
	flag.Parse()

	srv, err := server.NewServer(context.Background(), server.Options{
		ConfigPath: *configPath,
		EnvPath:    *envPath,
	})
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
