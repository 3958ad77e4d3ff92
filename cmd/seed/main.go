package main

import (
	"context"
	"log"

	"github.com/YasserDalali/compaire/cmd/config"
	migration "github.com/YasserDalali/compaire/cmd/database/migrate"
	"github.com/YasserDalali/compaire/cmd/database/seed"
	"github.com/YasserDalali/compaire/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err := seed.Seed(context.Background(), db); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
