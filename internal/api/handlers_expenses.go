package api

import (
	"errors"
	"strconv"

	"github.com/caioaraujo/grana/internal/services"
	"github.com/gofiber/fiber/v2"
)

type expenseInput struct {
	Category         string  `json:"category" validate:"required"`
	Location         *string `json:"location"`
	Date             string  `json:"date" validate:"required"`
	Amount           float64 `json:"amount"`
	Notes            *string `json:"notes"`
	IsRecurring      bool    `json:"is_recurring"`
	RecurrenceMonths *int    `json:"recurrence_months"`
}

func (handler *Handler) CreateExpense(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	var input expenseInput
	if ok, err := handler.parseBody(c, &input); !ok {
		return err
	}

	expense, err := handler.expenseService.Create(identity.ID, services.CreateExpenseInput{
		Category:         input.Category,
		Location:         input.Location,
		Date:             input.Date,
		Amount:           input.Amount,
		Notes:            input.Notes,
		IsRecurring:      input.IsRecurring,
		RecurrenceMonths: input.RecurrenceMonths,
	}, handler.now())
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return apiError(c, fiber.StatusUnprocessableEntity, "invalid date, expected YYYY-MM-DD")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create expense")
	}

	return c.JSON(fiber.Map{
		"message":    "Expense created successfully",
		"expense_id": strconv.FormatUint(uint64(expense.ID), 10),
	})
}

func (handler *Handler) ListExpenses(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	month := c.QueryInt("month")
	year := c.QueryInt("year")

	expenses, err := handler.expenseService.List(identity.ID, month, year)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list expenses")
	}

	payload := make([]fiber.Map, 0, len(expenses))
	for _, expense := range expenses {
		payload = append(payload, fiber.Map{
			"id":                expense.ID,
			"_id":               strconv.FormatUint(uint64(expense.ID), 10),
			"category":          expense.Category,
			"location":          expense.Location,
			"date":              expense.Date,
			"amount":            expense.Amount,
			"notes":             expense.Notes,
			"is_recurring":      expense.IsRecurring,
			"recurrence_months": expense.RecurrenceMonths,
		})
	}
	return c.JSON(payload)
}

func (handler *Handler) DeleteExpense(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	expenseID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid expense id")
	}

	if err := handler.expenseService.Delete(expenseID, identity.ID, handler.now()); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "Expense not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete expense")
	}

	return c.JSON(fiber.Map{"message": "Expense deleted successfully"})
}
