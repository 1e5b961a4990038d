package main

import (
	"github.com/joho/godotenv"

	"github.com/yeremiapane/spot-seeder/config"
	"github.com/yeremiapane/spot-seeder/database"
	"github.com/yeremiapane/spot-seeder/utils"
)

// seedapply generates a fresh dataset and loads it straight into a database
// (sqlite by default, mysql via DB_DRIVER/DB_DSN) instead of emitting SQL
// text. The whole run is one transaction.
func main() {
	utils.InitLogger()
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("invalid configuration: %v", err)
	}

	db, err := database.Open()
	if err != nil {
		utils.ErrorLogger.Fatalf("database connection failed: %v", err)
	}

	if err := database.Apply(db, cfg); err != nil {
		utils.ErrorLogger.Fatalf("apply aborted: %v", err)
	}
	utils.InfoLogger.Println("seed apply completed")
}
