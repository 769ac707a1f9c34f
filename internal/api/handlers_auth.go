package api

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/caioaraujo/grana/internal/services"
	"github.com/gofiber/fiber/v2"
)

type credentialsInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if ok, err := handler.parseBody(c, &input); !ok {
		return err
	}

	if !handler.loginLimiter.allow(input.Username) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	result, err := handler.authService.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	slog.Info("user logged in", "username", result.Username)
	return c.JSON(fiber.Map{
		"token":       result.Token,
		"user_id":     strconv.FormatUint(uint64(result.UserID), 10),
		"username":    result.Username,
		"has_profile": result.HasProfile,
	})
}

func (handler *Handler) MasterLogin(c *fiber.Ctx) error {
	var input credentialsInput
	if ok, err := handler.parseBody(c, &input); !ok {
		return err
	}

	if !handler.loginLimiter.allow(input.Username) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	result, err := handler.authService.MasterLogin(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	slog.Info("operator logged in", "username", result.Username, "role", result.Role)
	return c.JSON(fiber.Map{
		"token":    result.Token,
		"user_id":  strconv.FormatUint(uint64(result.UserID), 10),
		"username": result.Username,
		"role":     result.Role,
	})
}
