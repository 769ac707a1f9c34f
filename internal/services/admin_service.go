package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/caioaraujo/grana/internal/auth"
	"github.com/caioaraujo/grana/internal/models"
	"gorm.io/gorm"
)

type AdminUserRepository interface {
	ExistsByUsername(username string) (bool, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	List() ([]models.User, error)
	DeleteWithOwnedData(userID uint) error
}

type AdminMasterRepository interface {
	ExistsByUsername(username string) (bool, error)
	Create(master *models.MasterUser) error
}

type AuditLogRepository interface {
	Create(entry *models.AuditLog) error
	ListAll() ([]models.AuditLog, error)
	FindByID(entryID uint) (models.AuditLog, error)
	Delete(entryID uint) error
}

// AdminService covers the operations behind the /api/admin and /api/audit-log
// surfaces, plus the startup master-account bootstrap.
type AdminService struct {
	users    AdminUserRepository
	masters  AdminMasterRepository
	auditLog AuditLogRepository
}

func NewAdminService(users AdminUserRepository, masters AdminMasterRepository, auditLog AuditLogRepository) *AdminService {
	return &AdminService{
		users:    users,
		masters:  masters,
		auditLog: auditLog,
	}
}

type CreateUserInput struct {
	Username      string
	Password      string
	FullName      string
	CPF           *string
	Address       *string
	FamilyID      *string
	MonthlyIncome *float64
	IncomeDate    *int
	Notes         *string
}

func (service *AdminService) CreateUser(actorID uint, input CreateUserInput, now time.Time) (uint, error) {
	exists, err := service.users.ExistsByUsername(input.Username)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrUsernameTaken
	}

	passwordHash, err := auth.HashPassword(input.Password)
	if err != nil {
		return 0, err
	}

	fullName := input.FullName
	user := models.User{
		Username:      input.Username,
		PasswordHash:  passwordHash,
		FullName:      &fullName,
		CPF:           input.CPF,
		Address:       input.Address,
		FamilyID:      input.FamilyID,
		MonthlyIncome: input.MonthlyIncome,
		IncomeDate:    input.IncomeDate,
		Notes:         input.Notes,
	}
	if err := service.users.Create(&user); err != nil {
		return 0, err
	}

	audit := models.AuditLog{
		UserID:    actorID,
		Action:    models.AuditActionCreateUser,
		ItemType:  "user",
		ItemID:    strconv.FormatUint(uint64(user.ID), 10),
		Details:   fmt.Sprintf("Created user: %s", user.Username),
		Timestamp: now,
	}
	if err := service.auditLog.Create(&audit); err != nil {
		return 0, err
	}

	return user.ID, nil
}

func (service *AdminService) ListUsers() ([]models.User, error) {
	return service.users.List()
}

// DeleteUser cascades the user's owned rows. Audit entries referencing the
// user survive on purpose.
func (service *AdminService) DeleteUser(actorID uint, userID uint, now time.Time) error {
	if _, err := service.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := service.users.DeleteWithOwnedData(userID); err != nil {
		return err
	}

	audit := models.AuditLog{
		UserID:    actorID,
		Action:    models.AuditActionDeleteUser,
		ItemType:  "user",
		ItemID:    strconv.FormatUint(uint64(userID), 10),
		Details:   fmt.Sprintf("Deleted user: %d", userID),
		Timestamp: now,
	}
	return service.auditLog.Create(&audit)
}

// CreateAdmin registers a new operator account with the admin role. Only a
// master may reach this operation; the route gate enforces that.
func (service *AdminService) CreateAdmin(username string, password string) (uint, error) {
	exists, err := service.masters.ExistsByUsername(username)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrUsernameTaken
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}

	admin := models.MasterUser{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	}
	if err := service.masters.Create(&admin); err != nil {
		return 0, err
	}
	return admin.ID, nil
}

func (service *AdminService) ListAuditLog() ([]models.AuditLog, error) {
	return service.auditLog.ListAll()
}

func (service *AdminService) DeleteAuditLogEntry(entryID uint) error {
	if _, err := service.auditLog.FindByID(entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return service.auditLog.Delete(entryID)
}

// EnsureMasterAccount seeds the configured master account once. Empty
// credentials skip the bootstrap with a warning; an existing account is left
// untouched, so repeated startups are idempotent.
func (service *AdminService) EnsureMasterAccount(username string, password string) error {
	if username == "" || password == "" {
		slog.Warn("MASTER_USERNAME or MASTER_PASSWORD not set, skipping master account bootstrap")
		return nil
	}

	exists, err := service.masters.ExistsByUsername(username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	master := models.MasterUser{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         models.RoleMaster,
	}
	if err := service.masters.Create(&master); err != nil {
		return err
	}
	slog.Info("master account created", "username", username)
	return nil
}
