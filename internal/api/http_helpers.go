package api

import (
	"fmt"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// parseBody decodes the JSON body into dest and validates it, replying with
// 400 or 422 itself. The bool reports whether the handler may proceed.
func (handler *Handler) parseBody(c *fiber.Ctx, dest any) (bool, error) {
	if err := c.BodyParser(dest); err != nil {
		return false, apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := handler.validate.Struct(dest); err != nil {
		return false, apiError(c, fiber.StatusUnprocessableEntity, validationMessage(err))
	}
	return true, nil
}

func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "validation failed"
	}
	first := validationErrors[0]
	return fmt.Sprintf("validation failed on field %s (%s)", first.Field(), first.Tag())
}
