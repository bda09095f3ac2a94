package controllers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/membergate/membergate/internal/pkg/entitlements"
	"github.com/membergate/membergate/internal/pkg/env"
	"github.com/membergate/membergate/internal/pkg/mail"
	"github.com/membergate/membergate/internal/pkg/middleware"
	"github.com/membergate/membergate/internal/pkg/security"
)

var validate = validator.New()

// RequestLinkRequest is the body of POST /api/auth/request-link.
type RequestLinkRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Redirect string `json:"redirect"`
}

// HandleRequestLink issues a magic link for an entitled purchase email. The
// link is returned as JSON and, when SMTP is configured, also delivered to
// the address out of band.
func HandleRequestLink(c *fiber.Ctx) error {
	var req RequestLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email required"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email required"})
	}
	if req.Redirect == "" {
		req.Redirect = "/"
	}

	email := entitlements.NormalizeEmail(req.Email)
	entitled, err := getStore().Has(email)
	if err != nil {
		log.Errorf("entitlement lookup failed for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal"})
	}
	if !entitled {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "E-mail não encontrado. Use o e-mail da compra."})
	}

	token, err := security.IssueMagicToken(email, env.GetEnv("JWT_SECRET", "change-me"))
	if err != nil {
		log.Errorf("magic token issuance failed for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal"})
	}

	link := fmt.Sprintf("%s/api/auth/verify?token=%s&redirect=%s",
		appBaseURL(), url.QueryEscape(token), url.QueryEscape(req.Redirect))

	if mail.Configured() {
		// Delivery failures must not fail the request; the link is in the body.
		_ = mail.SendMagicLink(email, link)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "link": link})
}

// HandleVerifyLink validates a magic-link token and returns a small HTML
// bootstrap page that stores the token client-side and navigates to the
// redirect target.
func HandleVerifyLink(c *fiber.Ctx) error {
	token := c.Query("token")
	if _, err := security.VerifyMagicToken(token, env.GetEnv("JWT_SECRET", "change-me")); err != nil {
		return c.Status(fiber.StatusUnauthorized).Render("verify_error", fiber.Map{})
	}

	return c.Status(fiber.StatusOK).Render("verify", fiber.Map{
		"Token":    token,
		"Redirect": sanitizeRedirect(c.Query("redirect", "/")),
	})
}

// HandleMe returns the email bound to the presented bearer token. The token
// itself is checked by the magic-token middleware.
func HandleMe(c *fiber.Ctx) error {
	email, _ := c.Locals(middleware.KeyAuthEmail).(string)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"email": email})
}

// sanitizeRedirect constrains the reflected redirect target to same-origin
// relative paths. Absolute URLs and protocol-relative forms fall back to "/".
func sanitizeRedirect(redirect string) string {
	r := strings.TrimSpace(redirect)
	if r == "" || !strings.HasPrefix(r, "/") {
		return "/"
	}
	if strings.HasPrefix(r, "//") || strings.HasPrefix(r, "/\\") {
		return "/"
	}
	return r
}
