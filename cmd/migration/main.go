package main

import (
	"os"
	"strconv"

	"clubmanager/cmd/migration/initialize"
	"clubmanager/cmd/migration/seed"
	"clubmanager/config"
	"clubmanager/internal/database"
	"clubmanager/internal/logger"
)

const usage = "usage: migration [up|down [steps]|status|seed]"

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func run(args []string) error {
	log := logger.New("migration").Function("run")

	config, err := config.InitConfig()
	if err != nil {
		return log.Err("failed to initialize config", err)
	}
	logger.Setup(config.LogLevel, config.IsProduction())

	db, err := database.New(config)
	if err != nil {
		return log.Err("failed to open database", err)
	}
	defer func() { _ = db.Close() }()

	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "up":
		applied, err := db.MigrateUp()
		if err != nil {
			return log.Err("failed to apply migrations", err)
		}
		log.Info("Migrations applied", "count", applied)
		return initialize.InitializeTables(db.SQL, config, log)

	case "down":
		steps := 1
		if len(args) > 1 {
			if steps, err = strconv.Atoi(args[1]); err != nil || steps < 1 {
				return log.ErrMsg("steps must be a positive integer")
			}
		}
		rolledBack, err := db.MigrateDown(steps)
		if err != nil {
			return log.Err("failed to roll back migrations", err)
		}
		log.Info("Migrations rolled back", "count", rolledBack)
		return nil

	case "status":
		statuses, err := db.MigrationStatus()
		if err != nil {
			return log.Err("failed to read migration status", err)
		}
		for _, status := range statuses {
			log.Info("Migration", "id", status.ID, "applied", status.Applied)
		}
		return nil

	case "seed":
		if config.IsProduction() {
			return log.ErrMsg("refusing to seed a production database")
		}
		return seed.Seed(db.SQL, config, log)

	default:
		return log.ErrMsg(usage)
	}
}
