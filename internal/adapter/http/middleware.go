package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/internal/usecase"
)

const userIDKey = "userID"

// RequireAuth validates the Bearer token and stores the caller's user id in
// the request locals. Every document operation refuses to run without an
// identity.
func RequireAuth(accounts *usecase.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ah := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}
		uid, err := accounts.Authenticate(strings.TrimSpace(ah[len("Bearer "):]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}
		c.Locals(userIDKey, uid)
		return c.Next()
	}
}

// CurrentUserID returns the authenticated caller's id from the request.
func CurrentUserID(c *fiber.Ctx) uuid.UUID {
	if uid, ok := c.Locals(userIDKey).(uuid.UUID); ok {
		return uid
	}
	return uuid.Nil
}
