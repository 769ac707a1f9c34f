package models

import "time"

// Audit action tags.
const (
	AuditActionCreateUser    = "create_user"
	AuditActionDeleteUser    = "delete_user"
	AuditActionAddExpense    = "add_expense"
	AuditActionDeleteExpense = "delete_expense"
)

// AuditLog is an append-only action record. UserID is the acting account and
// carries no foreign key, so entries outlive the accounts they mention.
type AuditLog struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null"`
	Action    string `gorm:"not null"`
	ItemType  string
	ItemID    string
	Details   string
	Timestamp time.Time `gorm:"not null"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}
