// Package api wires the HTTP surface: routes, middleware, and handlers.
package api

import (
	"time"

	"github.com/caioaraujo/grana/internal/auth"
	"github.com/caioaraujo/grana/internal/db"
	"github.com/caioaraujo/grana/internal/services"
	"github.com/go-playground/validator"
)

type Handler struct {
	repos    *db.Repositories
	tokens   *auth.TokenManager
	location *time.Location
	validate *validator.Validate

	authService    *services.AuthService
	adminService   *services.AdminService
	expenseService *services.ExpenseService
	statsService   *services.StatsService

	loginLimiter *loginLimiter
}

func NewHandler(repos *db.Repositories, tokens *auth.TokenManager, location *time.Location) *Handler {
	gamificationService := services.NewGamificationService(repos.Gamification)

	return &Handler{
		repos:          repos,
		tokens:         tokens,
		location:       location,
		validate:       validator.New(),
		authService:    services.NewAuthService(repos.Users, repos.MasterUsers, tokens),
		adminService:   services.NewAdminService(repos.Users, repos.MasterUsers, repos.AuditLog),
		expenseService: services.NewExpenseService(repos.Expenses, repos.AuditLog, gamificationService),
		statsService:   services.NewStatsService(repos.Expenses, repos.Users),
		loginLimiter:   newLoginLimiter(),
	}
}

// AdminService exposes the admin operations for startup bootstrap.
func (handler *Handler) AdminService() *services.AdminService {
	return handler.adminService
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
