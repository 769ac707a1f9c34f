package services

import (
	"path/filepath"
	"testing"

	"github.com/caioaraujo/grana/internal/auth"
	"github.com/caioaraujo/grana/internal/db"
	"github.com/caioaraujo/grana/internal/models"
)

// openTestRepositories opens a fresh migrated database under a temp dir.
func openTestRepositories(t *testing.T) *db.Repositories {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "grana_test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return db.NewRepositories(database)
}

func createTestUser(t *testing.T, repos *db.Repositories, username string, password string) models.User {
	t.Helper()

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func createTestMaster(t *testing.T, repos *db.Repositories, username string, password string, role string) models.MasterUser {
	t.Helper()

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	master := models.MasterUser{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := repos.MasterUsers.Create(&master); err != nil {
		t.Fatalf("create test master: %v", err)
	}
	return master
}

func newExpenseServiceForTest(repos *db.Repositories) *ExpenseService {
	gamification := NewGamificationService(repos.Gamification)
	return NewExpenseService(repos.Expenses, repos.AuditLog, gamification)
}
