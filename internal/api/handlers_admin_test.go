package api

import (
	"net/http"
	"testing"

	"github.com/caioaraujo/grana/internal/models"
)

func TestAdminUserLifecycle(t *testing.T) {
	env := newTestEnv(t)
	_, masterToken := env.createOperator(t, "chefe", models.RoleMaster)

	created := env.request(t, http.MethodPost, "/api/admin/users", masterToken, map[string]any{
		"username":  "maria",
		"password":  "s3nha",
		"full_name": "Maria Silva",
	})
	expectStatus(t, created, http.StatusOK)
	var createBody struct {
		Message string `json:"message"`
		UserID  string `json:"user_id"`
	}
	decodeBody(t, created, &createBody)
	if createBody.Message != "User created successfully" {
		t.Fatalf("unexpected message %q", createBody.Message)
	}

	duplicate := env.request(t, http.MethodPost, "/api/admin/users", masterToken, map[string]any{
		"username":  "maria",
		"password":  "outra",
		"full_name": "Outra Maria",
	})
	expectError(t, duplicate, http.StatusBadRequest, "Username already exists")

	// The created account can log in and already has a profile.
	login := env.request(t, http.MethodPost, "/api/login", "", map[string]string{
		"username": "maria",
		"password": "s3nha",
	})
	expectStatus(t, login, http.StatusOK)
	var loginBody struct {
		HasProfile bool `json:"has_profile"`
	}
	decodeBody(t, login, &loginBody)
	if !loginBody.HasProfile {
		t.Fatal("expected has_profile true for an account created with a full name")
	}

	listed := env.request(t, http.MethodGet, "/api/admin/users", masterToken, nil)
	expectStatus(t, listed, http.StatusOK)
	var users []struct {
		StringID string  `json:"_id"`
		Username string  `json:"username"`
		FullName *string `json:"full_name"`
	}
	decodeBody(t, listed, &users)
	if len(users) != 1 || users[0].Username != "maria" {
		t.Fatalf("unexpected user list %+v", users)
	}
	if users[0].StringID != createBody.UserID {
		t.Fatalf("expected _id %q, got %q", createBody.UserID, users[0].StringID)
	}

	deleted := env.request(t, http.MethodDelete, "/api/admin/users/"+createBody.UserID, masterToken, nil)
	expectStatus(t, deleted, http.StatusOK)

	missing := env.request(t, http.MethodDelete, "/api/admin/users/"+createBody.UserID, masterToken, nil)
	expectError(t, missing, http.StatusNotFound, "User not found")
}

func TestCreateAdminRoute(t *testing.T) {
	env := newTestEnv(t)
	_, masterToken := env.createOperator(t, "chefe", models.RoleMaster)

	// A requested master role is ignored: new operators are always admins.
	created := env.request(t, http.MethodPost, "/api/admin/create-admin", masterToken, map[string]string{
		"username": "operador",
		"password": "s3nha",
		"role":     models.RoleMaster,
	})
	expectStatus(t, created, http.StatusOK)
	var createBody struct {
		Message string `json:"message"`
		AdminID string `json:"admin_id"`
	}
	decodeBody(t, created, &createBody)
	if createBody.Message != "Admin created successfully" {
		t.Fatalf("unexpected message %q", createBody.Message)
	}

	operator, err := env.repos.MasterUsers.FindByUsername("operador")
	if err != nil {
		t.Fatalf("load created operator: %v", err)
	}
	if operator.Role != models.RoleAdmin {
		t.Fatalf("expected role %s, got %s", models.RoleAdmin, operator.Role)
	}
}

func TestAuditLogRoutes(t *testing.T) {
	env := newTestEnv(t)
	_, masterToken := env.createOperator(t, "chefe", models.RoleMaster)

	created := env.request(t, http.MethodPost, "/api/admin/users", masterToken, map[string]any{
		"username":  "maria",
		"password":  "s3nha",
		"full_name": "Maria Silva",
	})
	expectStatus(t, created, http.StatusOK)
	var createBody struct {
		UserID string `json:"user_id"`
	}
	decodeBody(t, created, &createBody)

	deleted := env.request(t, http.MethodDelete, "/api/admin/users/"+createBody.UserID, masterToken, nil)
	expectStatus(t, deleted, http.StatusOK)

	listed := env.request(t, http.MethodGet, "/api/audit-log", masterToken, nil)
	expectStatus(t, listed, http.StatusOK)
	var entries []struct {
		StringID  string `json:"_id"`
		Action    string `json:"action"`
		ItemType  string `json:"item_type"`
		Timestamp string `json:"timestamp"`
	}
	decodeBody(t, listed, &entries)
	if len(entries) != 2 {
		t.Fatalf("expected create and delete entries, got %d", len(entries))
	}
	actions := map[string]bool{}
	for _, entry := range entries {
		actions[entry.Action] = true
		if entry.ItemType != "user" {
			t.Fatalf("expected item_type user, got %q", entry.ItemType)
		}
		if entry.Timestamp == "" {
			t.Fatal("expected a formatted timestamp")
		}
	}
	if !actions[models.AuditActionCreateUser] || !actions[models.AuditActionDeleteUser] {
		t.Fatalf("expected create_user and delete_user actions, got %v", actions)
	}

	removed := env.request(t, http.MethodDelete, "/api/audit-log/"+entries[0].StringID, masterToken, nil)
	expectStatus(t, removed, http.StatusOK)
	var removedBody struct {
		Message string `json:"message"`
	}
	decodeBody(t, removed, &removedBody)
	if removedBody.Message != "Log deleted successfully" {
		t.Fatalf("unexpected message %q", removedBody.Message)
	}

	again := env.request(t, http.MethodDelete, "/api/audit-log/"+entries[0].StringID, masterToken, nil)
	expectError(t, again, http.StatusNotFound, "Log not found")
}
