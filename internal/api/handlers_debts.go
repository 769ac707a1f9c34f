package api

import (
	"strconv"

	"github.com/caioaraujo/grana/internal/models"
	"github.com/gofiber/fiber/v2"
)

type debtInput struct {
	Description  string  `json:"description" validate:"required"`
	TotalAmount  float64 `json:"total_amount"`
	Installments int     `json:"installments"`
	InterestRate float64 `json:"interest_rate"`
	Status       string  `json:"status"`
}

func (handler *Handler) CreateDebt(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	var input debtInput
	if ok, err := handler.parseBody(c, &input); !ok {
		return err
	}

	status := input.Status
	if status == "" {
		status = models.DebtStatusOpen
	}

	debt := models.Debt{
		UserID:       identity.ID,
		Description:  input.Description,
		TotalAmount:  input.TotalAmount,
		Installments: input.Installments,
		InterestRate: input.InterestRate,
		Status:       status,
	}
	if err := handler.repos.Debts.Create(&debt); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create debt")
	}

	return c.JSON(fiber.Map{
		"message": "Debt created successfully",
		"debt_id": strconv.FormatUint(uint64(debt.ID), 10),
	})
}

func (handler *Handler) ListDebts(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	debts, err := handler.repos.Debts.ListForUser(identity.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list debts")
	}

	payload := make([]fiber.Map, 0, len(debts))
	for _, debt := range debts {
		payload = append(payload, fiber.Map{
			"id":            debt.ID,
			"_id":           strconv.FormatUint(uint64(debt.ID), 10),
			"description":   debt.Description,
			"total_amount":  debt.TotalAmount,
			"installments":  debt.Installments,
			"interest_rate": debt.InterestRate,
			"status":        debt.Status,
		})
	}
	return c.JSON(payload)
}
