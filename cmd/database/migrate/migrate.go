package migration

import (
	"Cookshare-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeLike{}); err != nil {
		log.Fatalf("Error migrating recipe like database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeView{}); err != nil {
		log.Fatalf("Error migrating recipe view database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeHistory{}); err != nil {
		log.Fatalf("Error migrating recipe history database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
