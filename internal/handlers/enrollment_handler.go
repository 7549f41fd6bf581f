package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/yash12-git/FitPlanHub/internal/models"
)

type enrollmentApplicationService interface {
	Enroll(ctx context.Context, client *models.Member, programID int64) (string, error)
}

type EnrollmentHandler struct {
	service enrollmentApplicationService
}

func NewEnrollmentHandler(service enrollmentApplicationService) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

func (h *EnrollmentHandler) Enroll(c *fiber.Ctx) error {
	member, ok := currentMember(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	programID, err := strconv.ParseInt(c.Params("programId"), 10, 64)
	if err != nil || programID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}

	status, err := h.service.Enroll(c.Context(), member, programID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"status": status})
}
