package controllers

import "github.com/gofiber/fiber/v2"

// HandleHealth is the unauthenticated liveness probe.
func HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}
