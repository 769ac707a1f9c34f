package api

import (
	"github.com/caioaraujo/grana/internal/models"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Health)

	api := app.Group("/api")
	api.Get("/", handler.Health)
	api.Post("/login", handler.Login)
	api.Post("/master-login", handler.MasterLogin)

	profile := api.Group("/profile", handler.AuthRequired, RequireRoles(models.UserTypePrimary))
	profile.Get("", handler.GetProfile)
	profile.Post("", handler.UpdateProfile)

	admin := api.Group("/admin", handler.AuthRequired)
	admin.Post("/users", RequireRoles(models.RoleMaster, models.RoleAdmin), handler.CreateUser)
	admin.Get("/users", RequireRoles(models.RoleMaster, models.RoleAdmin), handler.ListUsers)
	admin.Delete("/users/:id", RequireRoles(models.RoleMaster, models.RoleAdmin), handler.DeleteUser)
	admin.Post("/create-admin", RequireRoles(models.RoleMaster), handler.CreateAdmin)

	expenses := api.Group("/expenses", handler.AuthRequired, RequireRoles(models.UserTypePrimary))
	expenses.Post("", handler.CreateExpense)
	expenses.Get("", handler.ListExpenses)
	expenses.Delete("/:id", handler.DeleteExpense)

	income := api.Group("/income", handler.AuthRequired, RequireRoles(models.UserTypePrimary))
	income.Post("", handler.CreateIncome)
	income.Get("", handler.ListIncome)

	debts := api.Group("/debts", handler.AuthRequired, RequireRoles(models.UserTypePrimary))
	debts.Post("", handler.CreateDebt)
	debts.Get("", handler.ListDebts)

	cards := api.Group("/credit-cards", handler.AuthRequired, RequireRoles(models.UserTypePrimary))
	cards.Post("", handler.CreateCreditCard)
	cards.Get("", handler.ListCreditCards)

	auditLog := api.Group("/audit-log", handler.AuthRequired, RequireRoles(models.RoleMaster, models.RoleAdmin))
	auditLog.Get("", handler.GetAuditLog)
	auditLog.Delete("/:id", handler.DeleteAuditLogEntry)

	gamification := api.Group("/gamification", handler.AuthRequired, RequireRoles(models.UserTypePrimary))
	gamification.Get("", handler.GetGamification)

	statistics := api.Group("/statistics", handler.AuthRequired, RequireRoles(models.UserTypePrimary))
	statistics.Get("", handler.GetStatistics)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Financial Control API"})
}
