package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/caioaraujo/grana/internal/auth"
	"github.com/caioaraujo/grana/internal/db"
	"github.com/caioaraujo/grana/internal/models"
	"github.com/gofiber/fiber/v2"
)

type testEnv struct {
	app    *fiber.App
	repos  *db.Repositories
	tokens *auth.TokenManager
}

// newTestEnv boots the full route table against a fresh migrated database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "grana_test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	repos := db.NewRepositories(database)
	tokens := auth.NewTokenManager("test-secret", 24*time.Hour)
	handler := NewHandler(repos, tokens, time.UTC)

	app := fiber.New()
	RegisterRoutes(app, handler)

	return &testEnv{
		app:    app,
		repos:  repos,
		tokens: tokens,
	}
}

// createPrimaryUser seeds an end-user account and returns it with a token.
func (env *testEnv) createPrimaryUser(t *testing.T, username string, password string) (models.User, string) {
	t.Helper()

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Username: username, PasswordHash: passwordHash}
	if err := env.repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	token, err := env.tokens.Issue(user.ID, user.Username, models.UserTypePrimary)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return user, token
}

// createOperator seeds a master_users account with the given role and returns
// it with a token.
func (env *testEnv) createOperator(t *testing.T, username string, role string) (models.MasterUser, string) {
	t.Helper()

	passwordHash, err := auth.HashPassword("s3nha")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	operator := models.MasterUser{Username: username, PasswordHash: passwordHash, Role: role}
	if err := env.repos.MasterUsers.Create(&operator); err != nil {
		t.Fatalf("create operator: %v", err)
	}

	token, err := env.tokens.Issue(operator.ID, operator.Username, operator.Role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return operator, token
}

func (env *testEnv) request(t *testing.T, method string, path string, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, dest any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(dest); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func expectStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()

	if response.StatusCode != want {
		t.Fatalf("expected status %d, got %d", want, response.StatusCode)
	}
}

func expectError(t *testing.T, response *http.Response, wantStatus int, wantMessage string) {
	t.Helper()

	expectStatus(t, response, wantStatus)
	var payload struct {
		Error string `json:"error"`
	}
	decodeBody(t, response, &payload)
	if payload.Error != wantMessage {
		t.Fatalf("expected error %q, got %q", wantMessage, payload.Error)
	}
}
