package routes

import (
	"Cookshare-Backend/internal/api/handlers"
	"Cookshare-Backend/internal/middleware"
	"Cookshare-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	FeedHandler       handlers.FeedHandler
	EngagementHandler handlers.EngagementHandler
	ImportHandler     handlers.ImportHandler
	AssistantHandler  handlers.AssistantHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Recipes()
	c.Feed()
	c.Engagement()
	c.Imports()
	c.Assistant()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
	}
	c.App.Get("/api/users/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")

	// public surface first so it is not shadowed by the auth group
	recipes.Get("/count", c.RecipeHandler.CountPublicRecipes)
	recipes.Get("/public/:id", c.RecipeHandler.GetPublicRecipeDetail)

	owned := recipes.Group("", c.Middleware.AuthMiddleware(c.JWTService))
	{
		owned.Post("", c.RecipeHandler.CreateRecipe)
		owned.Get("", c.RecipeHandler.GetMyRecipes)
		owned.Get("/:id", c.RecipeHandler.GetMyRecipeDetail)
		owned.Delete("/:id", c.RecipeHandler.DeleteMyRecipe)
		owned.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
	}
}

func (c *Config) Feed() {
	feed := c.App.Group("/api/feed", c.Middleware.OptionalAuthMiddleware(c.JWTService))
	{
		feed.Get("", c.FeedHandler.GetFeed)
		feed.Get("/count", c.RecipeHandler.CountPublicRecipes)
		feed.Get("/search", c.FeedHandler.SearchFeed)
		feed.Post("/:id/view", c.Middleware.AuthMiddleware(c.JWTService), c.EngagementHandler.RecordView)
	}
	c.App.Get("/api/search", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.FeedHandler.HybridSearch)
}

func (c *Config) Engagement() {
	authed := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Post("/api/likes/:id", authed, c.EngagementHandler.ToggleLike)
	c.App.Get("/api/likes", authed, c.EngagementHandler.GetMyLikes)

	history := c.App.Group("/api/history", authed)
	{
		history.Post("/:id", c.EngagementHandler.TrackHistory)
		history.Get("", c.EngagementHandler.GetHistory)
		history.Delete("/:id", c.EngagementHandler.RemoveHistory)
	}
}

func (c *Config) Imports() {
	c.App.Post("/api/import/spoonacular/:externalId", c.ImportHandler.ImportSpoonacularRecipe)
	c.App.Get("/api/external/sync", c.ImportHandler.SyncMealDBRecipes)
	c.App.Get("/api/admin/seed", c.ImportHandler.SeedRecipes)
}

func (c *Config) Assistant() {
	c.App.Post("/api/ai/guide", c.AssistantHandler.Guide)
}

func (c *Config) GuestRoute() {
	live := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
	c.App.Get("/", live)
	c.App.Get("/health", live)
}
