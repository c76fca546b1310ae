package helpers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cintasign/hse-portal/internal/models"
)

// CreateTestSubmission creates a submission row with the given brand, spacing
// submitted_at so listing order is deterministic.
func CreateTestSubmission(t *testing.T, db *gorm.DB, formType, brand string, submittedAt time.Time) models.Submission {
	t.Helper()
	sub := models.Submission{
		ID:          uuid.New().String(),
		FormType:    formType,
		FormTitle:   "Test Inspection",
		SubmittedBy: "T. Ester",
		SubmittedAt: submittedAt,
		Brand:       brand,
	}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("Failed to create submission: %v", err)
	}
	return sub
}

// CreateTestProfile creates a user profile row
func CreateTestProfile(t *testing.T, db *gorm.DB, role string, brand *string) models.UserProfile {
	t.Helper()
	profile := models.UserProfile{
		ID:    uuid.New().String(),
		Role:  role,
		Brand: brand,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	return profile
}

// CreateTestSequence creates a document sequence counter row
func CreateTestSequence(t *testing.T, db *gorm.DB, formType, date string, lastNumber int) {
	t.Helper()
	seq := models.DocumentSequence{
		FormType:   formType,
		Date:       date,
		LastNumber: lastNumber,
	}
	if err := db.Create(&seq).Error; err != nil {
		t.Fatalf("Failed to create sequence: %v", err)
	}
}
