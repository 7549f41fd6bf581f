package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/yash12-git/FitPlanHub/internal/models"
	"github.com/yash12-git/FitPlanHub/pkg/utils"
)

type memberResolver interface {
	GetByHandle(ctx context.Context, handle string) (*models.Member, error)
}

// AuthRequired validates the bearer token and resolves its subject to a
// live member row. A token whose subject no longer exists is rejected the
// same as an invalid one.
func AuthRequired(secret string, members memberResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		tokenString := parts[1]
		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		member, err := members.GetByHandle(c.Context(), claims.Handle)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("member", member)
		c.Locals("role", member.Role)

		return c.Next()
	}
}
