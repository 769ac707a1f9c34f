package api

import (
	"log/slog"
	"strings"

	"github.com/caioaraujo/grana/internal/models"
	"github.com/gofiber/fiber/v2"
)

const contextIdentityKey = "grana_identity"

// Identity is the verified caller: token claims resolved against a live
// account row.
type Identity struct {
	ID       uint
	Username string
	UserType string
}

// AuthRequired verifies the bearer token and resolves the embedded identity
// against the users or master_users table. A still-valid token whose account
// has been deleted is rejected: the lookup failure surfaces as not found.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	rawToken := bearerToken(c)
	if rawToken == "" {
		return apiError(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, err := handler.tokens.Verify(rawToken)
	if err != nil {
		slog.Debug("token rejected", "path", c.Path(), "reason", err)
		return apiError(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	subjectID, err := claims.SubjectID()
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	identity := Identity{
		ID:       subjectID,
		Username: claims.Username,
		UserType: claims.UserType,
	}

	if claims.UserType == models.UserTypePrimary {
		if _, err := handler.repos.Users.FindByID(subjectID); err != nil {
			return apiError(c, fiber.StatusNotFound, "User not found")
		}
	} else {
		if _, err := handler.repos.MasterUsers.FindByID(subjectID); err != nil {
			return apiError(c, fiber.StatusNotFound, "User not found")
		}
	}

	c.Locals(contextIdentityKey, identity)
	return c.Next()
}

// RequireRoles gates an operation on the caller's user_type. It must run
// after AuthRequired.
func RequireRoles(allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := currentIdentity(c)
		if !ok {
			return apiError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}
		if _, permitted := allowedSet[identity.UserType]; !permitted {
			return apiError(c, fiber.StatusForbidden, "Unauthorized")
		}
		return c.Next()
	}
}

func currentIdentity(c *fiber.Ctx) (Identity, bool) {
	identity, ok := c.Locals(contextIdentityKey).(Identity)
	return identity, ok
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
