package services

import (
	"errors"
	"fmt"

	"github.com/cintasign/hse-portal/internal/models"
	"github.com/cintasign/hse-portal/internal/types"
	"gorm.io/gorm"
)

// PeekNextDocumentNumber computes the number the next submission of formType
// would receive on the given date. Read-only: the counter is not advanced.
func PeekNextDocumentNumber(db *gorm.DB, formType, date string) (int, error) {
	if formType == "" {
		return 0, types.ValidationError("formType is required")
	}

	var seq models.DocumentSequence
	err := db.Where("form_type = ? AND date = ?", formType, date).First(&seq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SequenceBaseline, nil
		}
		return 0, types.StorageError(err)
	}

	return seq.LastNumber + 1, nil
}

// CommitDocumentNumber advances the counter for (formType, date) and returns
// the issued number. The advance is a conditional UPDATE so concurrent callers
// never receive the same number; the row is created lazily at the baseline,
// retrying the UPDATE once if another caller wins the insert race.
func CommitDocumentNumber(db *gorm.DB, formType, date string) (int, error) {
	if formType == "" {
		return 0, types.ValidationError("formType is required")
	}

	var number int
	err := db.Transaction(func(tx *gorm.DB) error {
		issued, err := advanceSequence(tx, formType, date)
		if err != nil {
			return err
		}
		number = issued
		return nil
	})
	if err != nil {
		return 0, types.StorageError(err)
	}

	return number, nil
}

func advanceSequence(tx *gorm.DB, formType, date string) (int, error) {
	res := tx.Model(&models.DocumentSequence{}).
		Where("form_type = ? AND date = ?", formType, date).
		Update("last_number", gorm.Expr("last_number + 1"))
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected == 0 {
		seq := models.DocumentSequence{
			FormType:   formType,
			Date:       date,
			LastNumber: models.SequenceBaseline,
		}
		if err := tx.Create(&seq).Error; err == nil {
			return models.SequenceBaseline, nil
		}

		// Lost the insert race on the unique (form_type, date) key, so the
		// row exists now; the conditional update must succeed.
		res = tx.Model(&models.DocumentSequence{}).
			Where("form_type = ? AND date = ?", formType, date).
			Update("last_number", gorm.Expr("last_number + 1"))
		if res.Error != nil {
			return 0, res.Error
		}
		if res.RowsAffected == 0 {
			return 0, fmt.Errorf("document sequence for %s/%s disappeared during commit", formType, date)
		}
	}

	var seq models.DocumentSequence
	if err := tx.Where("form_type = ? AND date = ?", formType, date).First(&seq).Error; err != nil {
		return 0, err
	}

	return seq.LastNumber, nil
}
