package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/membergate/membergate/internal/pkg/env"
	"github.com/membergate/membergate/internal/pkg/security"
)

// KeyAuthEmail is the fiber.Ctx locals key under which the authenticated
// email is stored for downstream handlers.
const KeyAuthEmail = "auth_email"

// RequireMagicToken authenticates API requests carrying a bearer magic-link
// token and stores the bound email in locals. Missing and invalid tokens are
// reported separately only by message, never by failure detail.
func RequireMagicToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
		}

		claims, err := security.VerifyMagicToken(token, env.GetEnv("JWT_SECRET", "change-me"))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals(KeyAuthEmail, claims.Email)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
