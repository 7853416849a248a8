package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/kitfest-dev/event-pass-api/common"
)

func Cors() fiber.Handler {
	origins := make([]string, 0, len(common.Config.Cors))
	for _, origin := range common.Config.Cors {
		origins = append(origins, *origin)
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	})
}
