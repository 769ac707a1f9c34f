package api

import (
	"strconv"

	"github.com/caioaraujo/grana/internal/models"
	"github.com/gofiber/fiber/v2"
)

type incomeInput struct {
	IncomeType string  `json:"income_type" validate:"required"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date" validate:"required"`
	Notes      *string `json:"notes"`
}

func (handler *Handler) CreateIncome(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	var input incomeInput
	if ok, err := handler.parseBody(c, &input); !ok {
		return err
	}

	income := models.Income{
		UserID:     identity.ID,
		IncomeType: input.IncomeType,
		Amount:     input.Amount,
		Date:       input.Date,
		Notes:      input.Notes,
	}
	if err := handler.repos.Income.Create(&income); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create income")
	}

	return c.JSON(fiber.Map{
		"message":   "Income created successfully",
		"income_id": strconv.FormatUint(uint64(income.ID), 10),
	})
}

func (handler *Handler) ListIncome(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	entries, err := handler.repos.Income.ListForUser(identity.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list income")
	}

	payload := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		payload = append(payload, fiber.Map{
			"id":          entry.ID,
			"_id":         strconv.FormatUint(uint64(entry.ID), 10),
			"income_type": entry.IncomeType,
			"amount":      entry.Amount,
			"date":        entry.Date,
			"notes":       entry.Notes,
		})
	}
	return c.JSON(payload)
}
