package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/kitfest-dev/event-pass-api/type/shared"
)

// GetAdminFromContext extracts the admin ID set by the Jwt middleware.
func GetAdminFromContext(c *fiber.Ctx) (string, bool) {
	token, ok := c.Locals("auth").(*jwt.Token)
	if !ok {
		return "", false
	}

	claims, ok := token.Claims.(*shared.AdminClaims)
	if !ok || claims.AdminId == nil || *claims.AdminId == "" {
		return "", false
	}

	return *claims.AdminId, true
}
