package api

import (
	"errors"
	"strconv"

	"github.com/caioaraujo/grana/internal/services"
	"github.com/gofiber/fiber/v2"
)

type adminCreateUserInput struct {
	Username      string   `json:"username" validate:"required"`
	Password      string   `json:"password" validate:"required"`
	FullName      string   `json:"full_name" validate:"required"`
	CPF           *string  `json:"cpf"`
	Address       *string  `json:"address"`
	FamilyID      *string  `json:"family_id"`
	MonthlyIncome *float64 `json:"monthly_income"`
	IncomeDate    *int     `json:"income_date"`
	Notes         *string  `json:"notes"`
}

type adminCreateAdminInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	// Accepted for wire compatibility; new operator accounts are always
	// created with the admin role.
	Role string `json:"role"`
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	var input adminCreateUserInput
	if ok, err := handler.parseBody(c, &input); !ok {
		return err
	}

	userID, err := handler.adminService.CreateUser(identity.ID, services.CreateUserInput{
		Username:      input.Username,
		Password:      input.Password,
		FullName:      input.FullName,
		CPF:           input.CPF,
		Address:       input.Address,
		FamilyID:      input.FamilyID,
		MonthlyIncome: input.MonthlyIncome,
		IncomeDate:    input.IncomeDate,
		Notes:         input.Notes,
	}, handler.now())
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return apiError(c, fiber.StatusBadRequest, "Username already exists")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create user")
	}

	return c.JSON(fiber.Map{
		"message": "User created successfully",
		"user_id": strconv.FormatUint(uint64(userID), 10),
	})
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.adminService.ListUsers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list users")
	}

	payload := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		payload = append(payload, fiber.Map{
			"id":        user.ID,
			"_id":       strconv.FormatUint(uint64(user.ID), 10),
			"username":  user.Username,
			"full_name": user.FullName,
			"cpf":       user.CPF,
			"address":   user.Address,
			"family_id": user.FamilyID,
		})
	}
	return c.JSON(payload)
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	identity, _ := currentIdentity(c)

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	if err := handler.adminService.DeleteUser(identity.ID, userID, handler.now()); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "User not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete user")
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

func (handler *Handler) CreateAdmin(c *fiber.Ctx) error {
	var input adminCreateAdminInput
	if ok, err := handler.parseBody(c, &input); !ok {
		return err
	}

	adminID, err := handler.adminService.CreateAdmin(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return apiError(c, fiber.StatusBadRequest, "Username already exists")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create admin")
	}

	return c.JSON(fiber.Map{
		"message":  "Admin created successfully",
		"admin_id": strconv.FormatUint(uint64(adminID), 10),
	})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}
