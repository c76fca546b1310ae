package services_test

import (
	"testing"

	"github.com/cintasign/hse-portal/internal/config"
	"github.com/cintasign/hse-portal/internal/models"
	"github.com/cintasign/hse-portal/internal/services"
	"github.com/google/uuid"
)

// TestInitAuthorizerRetriesAfterFailure tests that a failed initialization
// does not latch: the next request attempts again instead of seeing a
// permanently nil client
func TestInitAuthorizerRetriesAfterFailure(t *testing.T) {
	cfg := &config.Config{AuthzURL: "http://127.0.0.1:1", AuthzClientID: "test"}

	if err := services.InitAuthorizer(cfg, "http", "localhost"); err == nil {
		t.Fatal("Expected init against an unreachable Authorizer to fail")
	}
	if services.IsAuthorizerInitialized() {
		t.Fatal("Expected client to stay uninitialized after a failed init")
	}

	// The second attempt must surface the failure again, not silently no-op
	if err := services.InitAuthorizer(cfg, "http", "localhost"); err == nil {
		t.Fatal("Expected the retry to fail, not return nil with a nil client")
	}
}

// TestEnsureProfileCreatesOnFirstRequest tests lazy profile creation with a
// valid brand cookie hint
func TestEnsureProfileCreatesOnFirstRequest(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New().String()

	profile, err := services.EnsureProfile(db, userID, models.BrandBellTimber)
	if err != nil {
		t.Fatalf("EnsureProfile failed: %v", err)
	}
	if profile.Role != models.RoleUser {
		t.Errorf("Expected default role %q, got %q", models.RoleUser, profile.Role)
	}
	if profile.Brand == nil || *profile.Brand != models.BrandBellTimber {
		t.Errorf("Expected brand hint reconciled, got %v", profile.Brand)
	}
}

// TestEnsureProfileIgnoresUnknownHint tests that an arbitrary cookie value
// never lands in the profile
func TestEnsureProfileIgnoresUnknownHint(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New().String()

	profile, err := services.EnsureProfile(db, userID, "acme")
	if err != nil {
		t.Fatalf("EnsureProfile failed: %v", err)
	}
	if profile.Brand != nil {
		t.Errorf("Expected no brand from an unknown hint, got %q", *profile.Brand)
	}
}

// TestEnsureProfileHintReconciledOnce tests that the hint fills an empty brand
// but never overwrites a set one
func TestEnsureProfileHintReconciledOnce(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New().String()

	if _, err := services.EnsureProfile(db, userID, ""); err != nil {
		t.Fatalf("EnsureProfile failed: %v", err)
	}

	profile, err := services.EnsureProfile(db, userID, models.BrandCintasign)
	if err != nil {
		t.Fatalf("EnsureProfile failed: %v", err)
	}
	if profile.Brand == nil || *profile.Brand != models.BrandCintasign {
		t.Errorf("Expected empty brand filled from hint, got %v", profile.Brand)
	}

	profile, err = services.EnsureProfile(db, userID, models.BrandBellTimber)
	if err != nil {
		t.Fatalf("EnsureProfile failed: %v", err)
	}
	if profile.Brand == nil || *profile.Brand != models.BrandCintasign {
		t.Errorf("Expected set brand to stay %q, got %v", models.BrandCintasign, profile.Brand)
	}
}

// TestClearBrand tests the sign-out brand reset
func TestClearBrand(t *testing.T) {
	db := setupTestDB(t)

	brand := models.BrandBellTimber
	profile := models.UserProfile{ID: uuid.New().String(), Role: models.RoleUser, Brand: &brand}
	db.Create(&profile)

	if err := services.ClearBrand(db, profile.ID); err != nil {
		t.Fatalf("ClearBrand failed: %v", err)
	}

	var stored models.UserProfile
	if err := db.Where("id = ?", profile.ID).First(&stored).Error; err != nil {
		t.Fatalf("Profile missing: %v", err)
	}
	if stored.Brand != nil {
		t.Errorf("Expected brand cleared, got %q", *stored.Brand)
	}
}
