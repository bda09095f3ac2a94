package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/membergate/membergate/app/controllers"
	"github.com/membergate/membergate/internal/pkg/entitlements"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter wires the entitlement store into the controllers and
// registers the API routes before the page fallback so /api/* never hits the
// catch-all.
func InstallRouter(app *fiber.App, store entitlements.Store) {
	controllers.InitializeControllers(store)
	setup(app, NewApiRouter(), NewHttpRouter())
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
