package migration

import (
	"fmt"
	"log"

	"github.com/YasserDalali/compaire/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Receipt{}); err != nil {
		log.Fatalf("Error migrating receipt database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Comparison{}); err != nil {
		log.Fatalf("Error migrating comparison database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
