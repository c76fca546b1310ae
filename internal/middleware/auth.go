package middleware

import (
	"fmt"

	"github.com/cintasign/hse-portal/internal/config"
	"github.com/cintasign/hse-portal/internal/models"
	"github.com/cintasign/hse-portal/internal/services"
	"github.com/cintasign/hse-portal/internal/types"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SessionCookie is the Authorizer session cookie name.
const SessionCookie = "cookie_session"

// BrandCookie carries the pre-authentication tenant hint.
const BrandCookie = "brand"

// RequireUser validates the session and resolves the caller's profile,
// storing a models.Identity in the request context.
func RequireUser(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authenticate(c, db, cfg, false)
	}
}

// RequireAdmin validates the session and additionally requires the admin role.
func RequireAdmin(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authenticate(c, db, cfg, true)
	}
}

// authenticate performs the authentication and role check
func authenticate(c *fiber.Ctx, db *gorm.DB, cfg *config.Config, adminOnly bool) error {
	session := c.Cookies(SessionCookie)
	if session == "" {
		return types.AuthenticationError(fmt.Sprintf("Session cookie %q not found", SessionCookie))
	}

	// The Authorizer client is initialized lazily on the first authenticated
	// request so the redirect URL can be derived from the request itself.
	if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
		return types.AuthenticationError(fmt.Sprintf("Authorizer unavailable: %v", err))
	}

	user, err := services.ValidateSession(session)
	if err != nil {
		return types.AuthenticationError(fmt.Sprintf("Invalid session: %v", err))
	}

	userID := services.UserField(user, "id")
	if userID == "" {
		return types.AuthenticationError("Session user has no id")
	}

	profile, err := services.EnsureProfile(db, userID, c.Cookies(BrandCookie))
	if err != nil {
		return types.StorageError(err)
	}

	identity := models.Identity{
		UserID: profile.ID,
		Email:  services.UserField(user, "email"),
		Role:   profile.Role,
		Brand:  profile.Brand,
	}

	if adminOnly && !identity.IsAdmin() {
		return types.AuthorizationError("Admin role required")
	}

	c.Locals("identity", identity)

	return c.Next()
}
