package main

import (
	"os"

	"github.com/subhadipbhowmik/hirequest/internal/bootstrap"
	"github.com/subhadipbhowmik/hirequest/internal/server"
)

// @title HireQuest API
// @version 1.0
// @description Campus placement portal backend: student accounts, placement drives and application tracking.
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		os.Exit(1)
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		os.Exit(1)
	}
	defer database.Close()

	deps, err := bootstrap.BuildDependencies(cfg, database.Pool, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to build dependencies")
		os.Exit(1)
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	srv := server.NewServer(cfg, router, lgr)
	if err := srv.Run(); err != nil {
		lgr.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
