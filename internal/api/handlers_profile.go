package api

import (
	"github.com/gofiber/fiber/v2"
)

type profileInput struct {
	FullName      string   `json:"full_name" validate:"required"`
	CPF           *string  `json:"cpf"`
	Address       *string  `json:"address"`
	FamilyID      *string  `json:"family_id"`
	MonthlyIncome *float64 `json:"monthly_income"`
	IncomeDate    *int     `json:"income_date"`
	Notes         *string  `json:"notes"`
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	user, err := handler.repos.Users.FindByID(identity.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "User not found")
	}

	return c.JSON(fiber.Map{
		"id":             user.ID,
		"username":       user.Username,
		"full_name":      user.FullName,
		"cpf":            user.CPF,
		"address":        user.Address,
		"family_id":      user.FamilyID,
		"monthly_income": user.MonthlyIncome,
		"income_date":    user.IncomeDate,
		"notes":          user.Notes,
	})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	var input profileInput
	if ok, err := handler.parseBody(c, &input); !ok {
		return err
	}

	if _, err := handler.repos.Users.FindByID(identity.ID); err != nil {
		return apiError(c, fiber.StatusNotFound, "User not found")
	}

	updates := map[string]any{
		"full_name":      input.FullName,
		"cpf":            input.CPF,
		"address":        input.Address,
		"family_id":      input.FamilyID,
		"monthly_income": input.MonthlyIncome,
		"income_date":    input.IncomeDate,
		"notes":          input.Notes,
	}
	if err := handler.repos.Users.UpdateProfile(identity.ID, updates); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}

	return c.JSON(fiber.Map{"message": "Profile updated successfully"})
}
