package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/membergate/membergate/app/controllers"
	"github.com/membergate/membergate/internal/pkg/constants"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// Page fallback for everything the API and static handlers did not claim.
	app.Get(constants.PageFallback, controllers.HandlePage)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
