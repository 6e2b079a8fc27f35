package handlers

import (
	"Cookshare-Backend/domain"
	"Cookshare-Backend/internal/api/presenters"
	"Cookshare-Backend/pkg/assistant"

	"github.com/gofiber/fiber/v2"
)

type (
	AssistantHandler interface {
		Guide(c *fiber.Ctx) error
	}

	assistantHandler struct {
		assistantService assistant.AssistantService
	}
)

func NewAssistantHandler(assistantService assistant.AssistantService) AssistantHandler {
	return &assistantHandler{assistantService: assistantService}
}

func (h *assistantHandler) Guide(c *fiber.Ctx) error {
	req := new(domain.GuideRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res := h.assistantService.Guide(c.Context(), *req)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGuide)
}
