package handlers

import (
	"Cookshare-Backend/domain"
	"Cookshare-Backend/internal/api/presenters"
	"Cookshare-Backend/pkg/engagement"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	EngagementHandler interface {
		ToggleLike(c *fiber.Ctx) error
		GetMyLikes(c *fiber.Ctx) error
		RecordView(c *fiber.Ctx) error
		TrackHistory(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
		RemoveHistory(c *fiber.Ctx) error
	}

	engagementHandler struct {
		engagementService engagement.EngagementService
	}
)

func NewEngagementHandler(engagementService engagement.EngagementService) EngagementHandler {
	return &engagementHandler{engagementService: engagementService}
}

func (h *engagementHandler) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.engagementService.ToggleLike(c.Context(), userID, recipeID)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrRecipeNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedToggleLike, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleLike)
}

func (h *engagementHandler) GetMyLikes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.engagementService.ListMyLikes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetLikes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLikes)
}

func (h *engagementHandler) RecordView(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.engagementService.RecordView(c.Context(), userID, recipeID)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrRecipeNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedRecordView, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRecordView)
}

func (h *engagementHandler) TrackHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.engagementService.TrackHistory(c.Context(), userID, recipeID)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrRecipeNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedTrackHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessTrackHistory)
}

func (h *engagementHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.engagementService.ListHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *engagementHandler) RemoveHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.engagementService.RemoveHistory(c.Context(), userID, recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRemoveHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveHistory)
}
