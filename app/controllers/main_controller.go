package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// HandlePage is the catch-all for non-API paths: login for explicit login
// URLs, the member page otherwise. Unmatched API paths get a JSON 404
// instead of a page.
func HandlePage(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	if strings.HasSuffix(c.Path(), "/login.html") {
		return c.Render("login", fiber.Map{})
	}
	return c.Render("index", fiber.Map{})
}
