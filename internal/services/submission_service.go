package services

import (
	"errors"
	"time"

	"github.com/cintasign/hse-portal/internal/models"
	"github.com/cintasign/hse-portal/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionInput is the client-supplied portion of a new submission. Brand,
// user id, timestamps, and the read flag are never taken from the client.
type SubmissionInput struct {
	FormType    string         `json:"formType"`
	FormTitle   string         `json:"formTitle"`
	SubmittedBy string         `json:"submittedBy"`
	Data        models.JSON    `json:"data,omitempty"`
	HasDefects  types.FlexBool `json:"hasDefects,omitempty"`
}

// Validate checks the required submission fields.
func (in *SubmissionInput) Validate() *types.PortalError {
	if in.FormType == "" {
		return types.ValidationError("formType is required")
	}
	if in.FormTitle == "" {
		return types.ValidationError("formTitle is required")
	}
	if in.SubmittedBy == "" {
		return types.ValidationError("submittedBy is required")
	}
	return nil
}

// ListSubmissions returns submissions ordered by submitted_at descending.
// An empty brandFilter is unrestricted. Filtering by the default tenant also
// matches legacy rows stored without a brand.
func ListSubmissions(db *gorm.DB, brandFilter string) ([]models.Submission, error) {
	query := db.Order("submitted_at DESC")

	if brandFilter != "" {
		if brandFilter == models.DefaultBrand {
			query = query.Where("brand = ? OR brand IS NULL OR brand = ''", brandFilter)
		} else {
			query = query.Where("brand = ?", brandFilter)
		}
	}

	var submissions []models.Submission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, types.StorageError(err)
	}

	return submissions, nil
}

// CreateSubmission validates the input, attaches the server-derived metadata,
// advances the document sequence for the form type, and persists the record.
// The sequence commit and the insert share one transaction.
func CreateSubmission(db *gorm.DB, input *SubmissionInput, identity models.Identity) (*models.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	submission := &models.Submission{
		ID:          uuid.New().String(),
		FormType:    input.FormType,
		FormTitle:   input.FormTitle,
		SubmittedBy: input.SubmittedBy,
		SubmittedAt: now,
		Data:        input.Data,
		HasDefects:  input.HasDefects.Bool(),
		Brand:       ResolveBrand(identity.Brand, ""),
		IsRead:      false,
		UserID:      identity.UserID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := advanceSequence(tx, input.FormType, now.Format(models.SequenceDateFormat)); err != nil {
			return err
		}
		return tx.Create(submission).Error
	})
	if err != nil {
		return nil, types.StorageError(err)
	}

	return submission, nil
}

// DeleteSubmission removes a submission by id.
func DeleteSubmission(db *gorm.DB, id string) error {
	res := db.Delete(&models.Submission{}, "id = ?", id)
	if res.Error != nil {
		return types.StorageError(res.Error)
	}
	if res.RowsAffected == 0 {
		return types.NotFoundError("Submission not found")
	}
	return nil
}

// GetProfile loads a user profile by identity id.
func GetProfile(db *gorm.DB, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := db.Where("id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFoundError("Profile not found")
		}
		return nil, types.StorageError(err)
	}
	return &profile, nil
}
