package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/authorizerdev/authorizer-go"
	"github.com/cintasign/hse-portal/internal/config"
	"github.com/cintasign/hse-portal/internal/models"
	"github.com/cintasign/hse-portal/internal/utils"
	"gorm.io/gorm"
)

var (
	authClient *authorizer.AuthorizerClient
	authMu     sync.Mutex
)

// IsAuthorizerInitialized returns true if the Authorizer client is initialized
func IsAuthorizerInitialized() bool {
	authMu.Lock()
	defer authMu.Unlock()
	return authClient != nil
}

// InitAuthorizer initializes the shared Authorizer client on first success.
// A failed attempt leaves the client uninitialized so a later request retries
// instead of every authentication failing until restart.
func InitAuthorizer(cfg *config.Config, requestProtocol, requestHost string) error {
	authMu.Lock()
	defer authMu.Unlock()

	if authClient != nil {
		return nil
	}

	// Ping the Authorizer service first
	if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
		return fmt.Errorf("authorizer ping failed: %w", err)
	}

	redirectURL := fmt.Sprintf("%s://%s", requestProtocol, requestHost)
	log.Printf("Initializing Authorizer: authorizerURL=%s, clientID=%s, redirectURL=%s",
		cfg.AuthzURL, cfg.AuthzClientID, redirectURL)

	client, err := authorizer.NewAuthorizerClient(cfg.AuthzClientID, cfg.AuthzURL, redirectURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create authorizer client: %w", err)
	}
	authClient = client

	return nil
}

// ValidateSession validates a session cookie and returns the authenticated user
func ValidateSession(cookie string) (interface{}, error) {
	authMu.Lock()
	client := authClient
	authMu.Unlock()

	if client == nil {
		return nil, fmt.Errorf("authorizer client not initialized")
	}

	res, err := client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}

	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("session is not valid")
	}

	return res.User, nil
}

// UserField extracts a string field from the Authorizer user payload.
func UserField(user interface{}, key string) string {
	if m, ok := user.(map[string]interface{}); ok {
		if v, ok := m[key].(string); ok {
			return v
		}
		return ""
	}

	// Structured SDK response; go through JSON to stay version-agnostic.
	raw, err := json.Marshal(user)
	if err != nil {
		return ""
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	v, _ := m[key].(string)
	return v
}

// EnsureProfile loads the caller's profile row, creating it on first
// authenticated request. A valid brand cookie hint is reconciled into the
// profile exactly once, while the profile has no brand of its own.
func EnsureProfile(db *gorm.DB, userID, brandHint string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := db.Where("id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{ID: userID, Role: models.RoleUser}
		if models.IsKnownBrand(brandHint) {
			profile.Brand = &brandHint
		}
		if err := db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}

	if profile.Brand == nil && models.IsKnownBrand(brandHint) {
		if err := db.Model(&profile).Update("brand", brandHint).Error; err != nil {
			return nil, err
		}
		profile.Brand = &brandHint
	}

	return &profile, nil
}

// ClearBrand clears the stored brand so the next sign-in forces re-selection.
func ClearBrand(db *gorm.DB, userID string) error {
	return db.Model(&models.UserProfile{}).Where("id = ?", userID).Update("brand", nil).Error
}
