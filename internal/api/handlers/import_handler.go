package handlers

import (
	"Cookshare-Backend/domain"
	"Cookshare-Backend/internal/api/presenters"
	"Cookshare-Backend/pkg/mealdb"
	"Cookshare-Backend/pkg/spoonacular"
	"errors"

	"github.com/gofiber/fiber/v2"
)

const maxAdminSeed = 200

type (
	ImportHandler interface {
		ImportSpoonacularRecipe(c *fiber.Ctx) error
		SyncMealDBRecipes(c *fiber.Ctx) error
		SeedRecipes(c *fiber.Ctx) error
	}

	importHandler struct {
		spoonacularImport spoonacular.ImportService
		mealdbImport      mealdb.ImportService
	}
)

func NewImportHandler(spoonacularImport spoonacular.ImportService, mealdbImport mealdb.ImportService) ImportHandler {
	return &importHandler{
		spoonacularImport: spoonacularImport,
		mealdbImport:      mealdbImport,
	}
}

func (h *importHandler) ImportSpoonacularRecipe(c *fiber.Ctx) error {
	externalID := c.Params("externalId")

	res, err := h.spoonacularImport.ImportByExternalID(c.Context(), externalID)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrProviderDisabled) {
			status = fiber.StatusServiceUnavailable
		}
		if errors.Is(err, domain.ErrProviderFetchFailed) {
			status = fiber.StatusBadGateway
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedImport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessImport)
}

func (h *importHandler) SyncMealDBRecipes(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 25)

	res, err := h.mealdbImport.ImportMeals(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSync, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSync)
}

// SeedRecipes is the operator shortcut for topping up the public pool.
func (h *importHandler) SeedRecipes(c *fiber.Ctx) error {
	requested := c.QueryInt("count", 30)
	if requested < 1 {
		requested = 1
	}
	if requested > maxAdminSeed {
		requested = maxAdminSeed
	}

	res, err := h.mealdbImport.ImportMeals(c.Context(), requested)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSeed, err)
	}

	seeded := domain.SeedResponse{Requested: requested, Inserted: res.Saved}
	return presenters.SuccessResponse(c, seeded, fiber.StatusOK, domain.MessageSuccessSeed)
}
