package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kitfest-dev/event-pass-api/api/middleware"
)

func Init(router fiber.Router) {
	api := router.Group("api")

	publicGroup := api.Group("public")
	SetupScanRoutes(publicGroup)

	adminGroup := api.Group("admin")
	adminGroup.Use(middleware.Jwt())
	SetupPassRoutes(adminGroup)
}
