package routes

import (
	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v2"
	pass_controller "github.com/kitfest-dev/event-pass-api/api/controllers/pass"
	membermodel "github.com/kitfest-dev/event-pass-api/api/model/memberModel"
	teammodel "github.com/kitfest-dev/event-pass-api/api/model/teamModel"
	"github.com/kitfest-dev/event-pass-api/common"
	"github.com/kitfest-dev/event-pass-api/common/util"
	"github.com/kitfest-dev/event-pass-api/internal/pass"
)

func SetupPassRoutes(router fiber.Router) {
	// Assets load here, once: a missing template or font aborts startup
	// instead of failing on the first generate request.
	renderer, err := pass.NewRenderer(*common.Config.PassTemplate, *common.Config.PassFont)
	if err != nil {
		gut.Fatal("Failed to load pass assets", err)
	}

	endpoint := ""
	if common.Config.MinIoEndpoint != nil {
		endpoint = *common.Config.MinIoEndpoint
	}
	publisher := pass.NewObjectPublisher(common.MinIOClient, endpoint, *common.Config.BucketPass)

	strict := common.Config.StrictGeneration != nil && *common.Config.StrictGeneration

	teamRepo := teammodel.NewTeamRepository(common.Gorm)
	memberRepo := membermodel.NewMemberRepository(common.Gorm)

	orchestrator := pass.NewOrchestrator(
		teamRepo,
		memberRepo,
		renderer,
		publisher,
		pass.MailerFunc(util.SendPassNotification),
		strict,
	)

	controller := pass_controller.NewPassController(teamRepo, orchestrator)

	passGroup := router.Group("pass")

	passGroup.Post("generate", controller.GeneratePending)
	passGroup.Post("generate/:teamId", controller.Generate)
	passGroup.Get("status/:teamId", controller.Status)
}
