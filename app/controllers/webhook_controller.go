package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/membergate/membergate/internal/pkg/env"
	"github.com/membergate/membergate/internal/pkg/hotmart"
)

const hottokHeader = "X-Hotmart-Hottok"

// HandleHotmartWebhook ingests Hotmart purchase notifications. The shared
// hottok header is the only authenticity mechanism; malformed or
// unrecognized events are acknowledged with 200 so the provider does not
// retry them.
func HandleHotmartWebhook(c *fiber.Ctx) error {
	hottok := c.Get(hottokHeader)
	if hottok == "" || hottok != env.GetEnv("HOTMART_HOTTOK", "") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid hottok"})
	}

	event := hotmart.ParseEvent(c.BodyRaw())
	if event.PurchaserEmail == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "ignored": "no purchaser"})
	}

	switch hotmart.ClassifyStatus(event.Status) {
	case hotmart.ActionGrant:
		allowlist := hotmart.ParseAllowlist(env.GetEnv("ALLOWED_PRODUCT_IDS", ""))
		if !allowlist.Allows(event.ProductID) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "ignored": "product not allowed"})
		}
		if err := getStore().Grant(event.PurchaserEmail, event.ProductID); err != nil {
			log.Errorf("webhook grant failed for %s: %v", event.PurchaserEmail, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal"})
		}
		log.Infof("webhook granted product %q to %s", event.ProductID, event.PurchaserEmail)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "added": event.PurchaserEmail, "productId": event.ProductID})

	case hotmart.ActionRevoke:
		if err := getStore().Revoke(event.PurchaserEmail); err != nil {
			log.Errorf("webhook revoke failed for %s: %v", event.PurchaserEmail, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal"})
		}
		log.Infof("webhook revoked access for %s (status %q)", event.PurchaserEmail, event.Status)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "removed": event.PurchaserEmail})

	default:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "received": true, "status": event.Status})
	}
}
