package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Score confidence levels accepted on metric scores.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

type Score struct {
	Value      float64 `json:"value"` // 0-10
	Confidence string  `json:"confidence"`
}

type Metric struct {
	Label string `json:"label"`
	Score Score  `json:"score"`
	Notes string `json:"notes,omitempty"`
}

type Section struct {
	Title   string   `json:"title"`
	Weight  float64  `json:"weight"` // relative importance, not normalized
	Metrics []Metric `json:"metrics"`
}

// Report is immutable after creation; there is no update endpoint. UserID is
// always taken from the authenticated principal, never from the request body.
type Report struct {
	ID            uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID                    `gorm:"type:uuid;index;not null" json:"user_id"`
	CandidateName string                       `gorm:"type:varchar(255);not null" json:"candidate_name"`
	Role          string                       `gorm:"type:varchar(255);not null" json:"role"`
	OverallScore  float64                      `gorm:"type:float;not null" json:"overall_score"` // 0-10, client supplied
	Sections      datatypes.JSONSlice[Section] `gorm:"type:jsonb" json:"sections"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}
