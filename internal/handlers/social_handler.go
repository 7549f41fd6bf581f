package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/yash12-git/FitPlanHub/internal/models"
)

type socialApplicationService interface {
	ToggleFollow(ctx context.Context, fan *models.Member, coachID int64) (string, error)
	ListCoachesWithFollowState(ctx context.Context, viewer *models.Member) ([]models.CoachListing, error)
}

type SocialHandler struct {
	service socialApplicationService
}

func NewSocialHandler(service socialApplicationService) *SocialHandler {
	return &SocialHandler{service: service}
}

func (h *SocialHandler) ListCoaches(c *fiber.Ctx) error {
	member, ok := currentMember(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	coaches, err := h.service.ListCoachesWithFollowState(c.Context(), member)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"coaches": coaches})
}

func (h *SocialHandler) ToggleConnection(c *fiber.Ctx) error {
	member, ok := currentMember(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	coachID, err := strconv.ParseInt(c.Params("coachId"), 10, 64)
	if err != nil || coachID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coach id"})
	}

	status, err := h.service.ToggleFollow(c.Context(), member, coachID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"status": status})
}
