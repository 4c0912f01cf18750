package main

import (
	"fmt"
	"log"
	"os"

	"wiki-quiz/internal/config"
	"wiki-quiz/internal/database"
	"wiki-quiz/internal/logger"

	"go.uber.org/zap"
)

const usage = "usage: migrate [up|down]"

func main() {
	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}
	if len(os.Args) > 2 || (direction != "up" && direction != "down") {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	dsn := cfg.GetDSN()
	l.Info("Running migrations", zap.String("direction", direction), zap.String("driver", database.DriverFor(dsn)))

	run := database.MigrateUp
	if direction == "down" {
		run = database.MigrateDown
	}
	if err := run(dsn, l); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
}
