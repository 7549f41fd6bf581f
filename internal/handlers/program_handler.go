package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yash12-git/FitPlanHub/internal/models"
	"github.com/yash12-git/FitPlanHub/internal/services"
)

type catalogApplicationService interface {
	Publish(
		ctx context.Context,
		owner *models.Member,
		input services.PublishProgramInput,
	) (*models.Program, error)
	ListOwned(ctx context.Context, owner *models.Member) ([]models.Program, error)
}

type programResponse struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"owner_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"duration_days"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProgramHandler struct {
	service catalogApplicationService
}

func NewProgramHandler(service catalogApplicationService) *ProgramHandler {
	return &ProgramHandler{service: service}
}

type publishProgramRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Days        int     `json:"days"`
}

func (h *ProgramHandler) PublishProgram(c *fiber.Ctx) error {
	member, ok := currentMember(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req publishProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	program, err := h.service.Publish(c.Context(), member, services.PublishProgramInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.Days,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "Workout published",
		"program": newProgramResponse(program),
	})
}

func (h *ProgramHandler) ListMyPrograms(c *fiber.Ctx) error {
	member, ok := currentMember(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	programs, err := h.service.ListOwned(c.Context(), member)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"programs": newProgramResponses(programs)})
}

func newProgramResponse(program *models.Program) *programResponse {
	if program == nil {
		return nil
	}
	return &programResponse{
		ID:           program.ID,
		OwnerID:      program.OwnerID,
		Title:        program.Title,
		Description:  program.Description,
		Price:        program.Price,
		DurationDays: program.DurationDays,
		CreatedAt:    program.CreatedAt,
	}
}

func newProgramResponses(programs []models.Program) []programResponse {
	if len(programs) == 0 {
		return []programResponse{}
	}
	responses := make([]programResponse, 0, len(programs))
	for i := range programs {
		responses = append(responses, *newProgramResponse(&programs[i]))
	}
	return responses
}
