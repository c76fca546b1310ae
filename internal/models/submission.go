package models

import (
	"time"

	"gorm.io/gorm"
)

// Submission is one completed, stored instance of an inspection form.
// Column tags carry the storage naming (snake_case), json tags the wire
// naming (camelCase); the model is the translation boundary between them.
type Submission struct {
	ID          string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	FormType    string    `gorm:"column:form_type;size:255;not null;index" json:"formType"`
	FormTitle   string    `gorm:"column:form_title;size:255;not null" json:"formTitle"`
	SubmittedBy string    `gorm:"column:submitted_by;size:255;not null" json:"submittedBy"`
	SubmittedAt time.Time `gorm:"column:submitted_at;not null;index" json:"submittedAt"`
	Data        JSON      `gorm:"column:data" json:"data,omitempty"`
	HasDefects  bool      `gorm:"column:has_defects;not null;default:false" json:"hasDefects"`
	Brand       string    `gorm:"column:brand;size:32;index" json:"brand"`
	IsRead      bool      `gorm:"column:is_read;not null;default:false" json:"isRead"`
	UserID      string    `gorm:"column:user_id;type:char(36);index" json:"userId"`
}

// TableName overrides the table name for Submission
func (Submission) TableName() string {
	return "submissions"
}

// AfterFind normalizes rows stored before multi-tenancy: an absent or empty
// brand always reads as the default tenant, never an empty string.
func (s *Submission) AfterFind(tx *gorm.DB) error {
	if s.Brand == "" {
		s.Brand = DefaultBrand
	}
	return nil
}
