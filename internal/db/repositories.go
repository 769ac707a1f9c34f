package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	MasterUsers  *MasterUserRepository
	Expenses     *ExpenseRepository
	Income       *IncomeRepository
	Debts        *DebtRepository
	CreditCards  *CreditCardRepository
	Gamification *GamificationRepository
	AuditLog     *AuditLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		MasterUsers:  NewMasterUserRepository(database),
		Expenses:     NewExpenseRepository(database),
		Income:       NewIncomeRepository(database),
		Debts:        NewDebtRepository(database),
		CreditCards:  NewCreditCardRepository(database),
		Gamification: NewGamificationRepository(database),
		AuditLog:     NewAuditLogRepository(database),
	}
}
