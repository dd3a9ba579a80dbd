package middleware

import (
	"strings"

	"github.com/fadilmartias/intervue-backend/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PrincipalKey is the locals key holding the authenticated user's UUID.
const PrincipalKey = "principal_id"

// RequireAuth verifies the session token (cookie first, then bearer header)
// and stores the principal ID in the request locals. Handlers never read
// identity from the request body.
func RequireAuth(auth *usecase.AuthUsecase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("token")
		if token == "" {
			header := c.Get("Authorization")
			if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
				token = header[7:]
			}
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
		}

		principalID, err := auth.ParseToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		c.Locals(PrincipalKey, principalID)
		return c.Next()
	}
}

// Principal returns the authenticated user's ID, or uuid.Nil when the
// middleware did not run.
func Principal(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(PrincipalKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
