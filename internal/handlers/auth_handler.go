package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yash12-git/FitPlanHub/internal/models"
	"github.com/yash12-git/FitPlanHub/pkg/utils"
)

type authApplicationService interface {
	Register(ctx context.Context, handle, password, role string) (*models.Member, error)
	Authenticate(ctx context.Context, handle, password string) (*models.Member, error)
}

type AuthHandler struct {
	service    authApplicationService
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthHandler(service authApplicationService, jwtSecret string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		service:    service,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

type signupRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if _, err := h.service.Register(c.Context(), req.Handle, req.Password, req.Role); err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "Account created!"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	member, err := h.service.Authenticate(c.Context(), req.Handle, req.Password)
	if err != nil {
		return mapServiceError(c, err)
	}

	token, err := utils.GenerateToken(member.Handle, member.Role, h.jwtSecret, h.sessionTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"token":      token,
		"token_type": "bearer",
		"role":       member.Role,
		"member_id":  member.ID,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	member, ok := currentMember(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	return c.JSON(fiber.Map{
		"member": fiber.Map{
			"id":     member.ID,
			"handle": member.Handle,
			"role":   member.Role,
		},
	})
}
