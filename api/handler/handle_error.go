package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kitfest-dev/event-pass-api/type/response"
)

func HandleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(
			response.Error(fiberErr.Message),
		)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(
		response.Error(err.Error()),
	)
}
