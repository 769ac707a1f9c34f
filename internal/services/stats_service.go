package services

import (
	"sort"

	"github.com/caioaraujo/grana/internal/models"
	"github.com/shopspring/decimal"
)

type StatsExpenseReader interface {
	ListForUser(userID uint) ([]models.Expense, error)
}

type StatsUserReader interface {
	FindByID(userID uint) (models.User, error)
}

type StatsService struct {
	expenses StatsExpenseReader
	users    StatsUserReader
}

func NewStatsService(expenses StatsExpenseReader, users StatsUserReader) *StatsService {
	return &StatsService{
		expenses: expenses,
		users:    users,
	}
}

type CategoryTotal struct {
	Category string  `json:"category"`
	ID       string  `json:"_id"`
	Total    float64 `json:"total"`
}

type Statistics struct {
	ExpensesByCategory []CategoryTotal `json:"expenses_by_category"`
	TotalIncome        float64         `json:"total_income"`
}

// Build groups all of the user's expenses by category and sums the amounts.
// Sums run on decimals so float amounts do not drift during aggregation.
// TotalIncome is the profile's declared monthly income, not a sum of Income
// rows; the two can disagree and that mismatch is part of the contract.
func (service *StatsService) Build(userID uint) (Statistics, error) {
	expenses, err := service.expenses.ListForUser(userID)
	if err != nil {
		return Statistics{}, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		totals[expense.Category] = totals[expense.Category].Add(decimal.NewFromFloat(expense.Amount))
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	byCategory := make([]CategoryTotal, 0, len(categories))
	for _, category := range categories {
		byCategory = append(byCategory, CategoryTotal{
			Category: category,
			ID:       category,
			Total:    totals[category].InexactFloat64(),
		})
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return Statistics{}, err
	}
	totalIncome := 0.0
	if user.MonthlyIncome != nil {
		totalIncome = *user.MonthlyIncome
	}

	return Statistics{
		ExpensesByCategory: byCategory,
		TotalIncome:        totalIncome,
	}, nil
}
