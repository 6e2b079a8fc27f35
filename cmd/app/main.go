package main

import (
	"Cookshare-Backend/cmd/config"
	migration "Cookshare-Backend/cmd/database/migrate"
	"Cookshare-Backend/cmd/database/seed"
	"Cookshare-Backend/internal/utils"
	"Cookshare-Backend/pkg/mealdb"
	"Cookshare-Backend/pkg/recipe"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	recipeRepository := recipe.NewRecipeRepository(db)
	mealdbImport := mealdb.NewImportService(mealdb.NewClient(), recipeRepository)
	if err := seed.Seed(db, mealdbImport); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
