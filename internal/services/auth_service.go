package services

import (
	"github.com/caioaraujo/grana/internal/auth"
	"github.com/caioaraujo/grana/internal/models"
)

type AuthUserRepository interface {
	FindByUsername(username string) (models.User, error)
}

type AuthMasterRepository interface {
	FindByUsername(username string) (models.MasterUser, error)
}

type AuthService struct {
	users   AuthUserRepository
	masters AuthMasterRepository
	tokens  *auth.TokenManager
}

func NewAuthService(users AuthUserRepository, masters AuthMasterRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		users:   users,
		masters: masters,
		tokens:  tokens,
	}
}

type LoginResult struct {
	Token      string
	UserID     uint
	Username   string
	HasProfile bool
}

// Login verifies primary-user credentials and issues a 24h token tagged
// "primary". A missing user and a wrong password fail identically.
func (service *AuthService) Login(username string, password string) (LoginResult, error) {
	user, err := service.users.FindByUsername(username)
	if err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := service.tokens.Issue(user.ID, user.Username, models.UserTypePrimary)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token:      token,
		UserID:     user.ID,
		Username:   user.Username,
		HasProfile: user.HasProfile(),
	}, nil
}

type MasterLoginResult struct {
	Token    string
	UserID   uint
	Username string
	Role     string
}

// MasterLogin verifies operator credentials. The type tag embedded in the
// token is the account's own role, not a fixed string.
func (service *AuthService) MasterLogin(username string, password string) (MasterLoginResult, error) {
	master, err := service.masters.FindByUsername(username)
	if err != nil {
		return MasterLoginResult{}, ErrInvalidCredentials
	}
	if !auth.CheckPassword(master.PasswordHash, password) {
		return MasterLoginResult{}, ErrInvalidCredentials
	}

	token, err := service.tokens.Issue(master.ID, master.Username, master.Role)
	if err != nil {
		return MasterLoginResult{}, err
	}

	return MasterLoginResult{
		Token:    token,
		UserID:   master.ID,
		Username: master.Username,
		Role:     master.Role,
	}, nil
}
