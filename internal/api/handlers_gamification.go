package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func (handler *Handler) GetGamification(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	state, err := handler.repos.Gamification.FindForUser(identity.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(fiber.Map{"points": 0, "streak_days": 0})
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch gamification")
	}

	return c.JSON(fiber.Map{
		"points":      state.Points,
		"streak_days": state.StreakDays,
	})
}
