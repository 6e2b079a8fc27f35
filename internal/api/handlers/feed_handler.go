package handlers

import (
	"Cookshare-Backend/domain"
	"Cookshare-Backend/internal/api/presenters"
	"Cookshare-Backend/pkg/feed"

	"github.com/gofiber/fiber/v2"
)

type (
	FeedHandler interface {
		GetFeed(c *fiber.Ctx) error
		SearchFeed(c *fiber.Ctx) error
		HybridSearch(c *fiber.Ctx) error
	}

	feedHandler struct {
		feedService feed.FeedService
	}
)

func NewFeedHandler(feedService feed.FeedService) FeedHandler {
	return &feedHandler{feedService: feedService}
}

// optionalUserID reads the user id set by the optional auth middleware.
// Anonymous callers simply have no local set.
func optionalUserID(c *fiber.Ctx) string {
	if userID, ok := c.Locals("user_id").(string); ok {
		return userID
	}
	return ""
}

func (h *feedHandler) GetFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 20)

	res, err := h.feedService.Feed(c.Context(), page, size, optionalUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFeed, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFeed)
}

func (h *feedHandler) SearchFeed(c *fiber.Ctx) error {
	q := c.Query("q", "")
	searchType := c.Query("type", "title")
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 20)

	res, err := h.feedService.SearchFeed(c.Context(), q, searchType, page, size, optionalUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSearch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSearch)
}

func (h *feedHandler) HybridSearch(c *fiber.Ctx) error {
	q := c.Query("q", "")
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 20)

	res, err := h.feedService.HybridSearch(c.Context(), q, page, size, optionalUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSearch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSearch)
}
