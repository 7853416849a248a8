package routes

import (
	"github.com/gofiber/fiber/v2"
	scan_controller "github.com/kitfest-dev/event-pass-api/api/controllers/scan"
	membermodel "github.com/kitfest-dev/event-pass-api/api/model/memberModel"
	scanmodel "github.com/kitfest-dev/event-pass-api/api/model/scanModel"
	"github.com/kitfest-dev/event-pass-api/common"
)

func SetupScanRoutes(router fiber.Router) {
	memberRepo := membermodel.NewMemberRepository(common.Gorm)
	scanRepo := scanmodel.NewScanLogRepository(common.Mongo)

	controller := scan_controller.NewScanController(memberRepo, scanRepo)

	scanGroup := router.Group("scan")

	scanGroup.Post("verify", controller.Verify)
}
