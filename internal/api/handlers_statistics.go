package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetStatistics(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	statistics, err := handler.statsService.Build(identity.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build statistics")
	}

	return c.JSON(statistics)
}
