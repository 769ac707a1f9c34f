package api

import (
	"strconv"

	"github.com/caioaraujo/grana/internal/models"
	"github.com/gofiber/fiber/v2"
)

type creditCardInput struct {
	CardName    string `json:"card_name" validate:"required"`
	ClosingDate int    `json:"closing_date"`
	DueDate     int    `json:"due_date"`
}

func (handler *Handler) CreateCreditCard(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	var input creditCardInput
	if ok, err := handler.parseBody(c, &input); !ok {
		return err
	}

	card := models.CreditCard{
		UserID:      identity.ID,
		CardName:    input.CardName,
		ClosingDate: input.ClosingDate,
		DueDate:     input.DueDate,
	}
	if err := handler.repos.CreditCards.Create(&card); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create credit card")
	}

	return c.JSON(fiber.Map{
		"message": "Credit card created successfully",
		"card_id": strconv.FormatUint(uint64(card.ID), 10),
	})
}

func (handler *Handler) ListCreditCards(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	cards, err := handler.repos.CreditCards.ListForUser(identity.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list credit cards")
	}

	payload := make([]fiber.Map, 0, len(cards))
	for _, card := range cards {
		payload = append(payload, fiber.Map{
			"id":           card.ID,
			"_id":          strconv.FormatUint(uint64(card.ID), 10),
			"card_name":    card.CardName,
			"closing_date": card.ClosingDate,
			"due_date":     card.DueDate,
		})
	}
	return c.JSON(payload)
}
