package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/yash12-git/FitPlanHub/internal/models"
)

type feedApplicationService interface {
	ComposeFeed(ctx context.Context, client *models.Member) ([]models.FeedItem, error)
}

type FeedHandler struct {
	service feedApplicationService
}

func NewFeedHandler(service feedApplicationService) *FeedHandler {
	return &FeedHandler{service: service}
}

func (h *FeedHandler) GetFeed(c *fiber.Ctx) error {
	member, ok := currentMember(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	feed, err := h.service.ComposeFeed(c.Context(), member)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"feed": feed})
}
