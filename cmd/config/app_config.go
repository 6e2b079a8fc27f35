package config

import (
	"Cookshare-Backend/internal/api/handlers"
	"Cookshare-Backend/internal/api/presenters"
	"Cookshare-Backend/internal/api/routes"
	"Cookshare-Backend/internal/middleware"
	"Cookshare-Backend/internal/utils"
	"Cookshare-Backend/internal/utils/storage"
	"Cookshare-Backend/pkg/assistant"
	"Cookshare-Backend/pkg/engagement"
	"Cookshare-Backend/pkg/feed"
	"Cookshare-Backend/pkg/jwt"
	"Cookshare-Backend/pkg/mealdb"
	"Cookshare-Backend/pkg/recipe"
	"Cookshare-Backend/pkg/spoonacular"
	"Cookshare-Backend/pkg/user"
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			return presenters.ErrorResponse(c, code, "request failed", err)
		},
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	engagementRepository := engagement.NewEngagementRepository(db)

	// Clients
	spoonacularClient := spoonacular.NewClient()
	mealdbClient := mealdb.NewClient()
	assistantClient := assistant.NewClient()

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	engagementService := engagement.NewEngagementService(engagementRepository, recipeRepository)
	feedService := feed.NewFeedService(recipeRepository, engagementRepository, spoonacularClient)
	spoonacularImport := spoonacular.NewImportService(spoonacularClient, recipeRepository)
	mealdbImport := mealdb.NewImportService(mealdbClient, recipeRepository)
	assistantService := assistant.NewAssistantService(assistantClient)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	feedHandler := handlers.NewFeedHandler(feedService)
	engagementHandler := handlers.NewEngagementHandler(engagementService)
	importHandler := handlers.NewImportHandler(spoonacularImport, mealdbImport)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		FeedHandler:       feedHandler,
		EngagementHandler: engagementHandler,
		ImportHandler:     importHandler,
		AssistantHandler:  assistantHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
