package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/membergate/membergate/app/controllers"
	"github.com/membergate/membergate/internal/pkg/constants"
	"github.com/membergate/membergate/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	// Rate-limit the whole API surface; webhook retries from the provider
	// stay well below this.
	app.Use(constants.APIRoute, limiter.New(limiter.Config{Max: 120}))

	app.Get(constants.HealthRoute, controllers.HandleHealth)
	app.Post(constants.WebhookRoute, controllers.HandleHotmartWebhook)
	app.Post(constants.RequestLinkRoute, controllers.HandleRequestLink)
	app.Get(constants.VerifyRoute, controllers.HandleVerifyLink)
	app.Get(constants.MeRoute, middleware.RequireMagicToken(), controllers.HandleMe)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
