package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"uniqueIndex;not null" json:"company_name"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint    `json:"company_id"`
	Company   Company `json:"company"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	// Bilingual jobs keep secondary-locale text independent of the primary
	Bilingual bool `gorm:"not null;default:false" json:"bilingual"`
	// Canonical application form; superseded as a whole on every save
	FormSchema datatypes.JSON `gorm:"type:jsonb" json:"form_schema"`
}

// RecommendedField is a template library entry, keyed by its field id
type RecommendedField struct {
	FieldID    string         `gorm:"primaryKey" json:"field_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	Definition datatypes.JSON `gorm:"type:jsonb;not null" json:"definition"`
}

type JobEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	JobID     uint      `json:"job_id"`
	EventType string    `json:"event_type"`
	Details   string    `gorm:"type:text" json:"details"`
}

const (
	EventJobCreated       = "JOB_CREATED"
	EventSchemaSaved      = "SCHEMA_SAVED"
	EventBilingualChanged = "BILINGUAL_CHANGED"
)
