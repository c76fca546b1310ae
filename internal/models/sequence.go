package models

import "time"

// DocumentSequence tracks the last issued document number for a
// (form type, calendar date) pair. Rows are created lazily at commit time.
type DocumentSequence struct {
	SequenceID uint64 `gorm:"column:sequence_id;primaryKey;autoIncrement"`
	FormType   string `gorm:"column:form_type;size:255;not null;index:idx_form_type_date,unique"`
	Date       string `gorm:"column:date;type:char(10);not null;index:idx_form_type_date,unique"`
	LastNumber int    `gorm:"column:last_number;not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides the table name for DocumentSequence
func (DocumentSequence) TableName() string {
	return "document_sequences"
}

// SequenceDateFormat is the YYYY-MM-DD granularity of the daily counter key.
const SequenceDateFormat = "2006-01-02"

// SequenceBaseline is the number issued for the first document of a
// (form type, date) pair.
const SequenceBaseline = 100
