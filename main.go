// @title GradTrak API
// @version 1.0
// @description Graduation credit tracking backend for school counseling teams.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"
	"path/filepath"

	"gradtrak_backend/internal/app"
	"gradtrak_backend/internal/config"
	"gradtrak_backend/pkg/configwatcher"
	"gradtrak_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	watch := flag.Bool("watch-config", true, "reload calendar and mail settings on config change")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		go configwatcher.WatchConfig(filepath.Join(*configDir, "config.yaml"), application.ReloadConfig)
	}

	application.Run()
}
