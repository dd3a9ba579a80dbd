package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Interview styles selectable during onboarding.
const (
	StyleFriendly = "friendly"
	StyleNeutral  = "neutral"
	StyleStrict   = "strict"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email    string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Github   string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"github"`
	Password string    `gorm:"type:varchar(255);not null" json:"-"`

	OnboardingCompleted bool                        `json:"onboarding_completed"`
	Role                string                      `gorm:"type:varchar(100)" json:"role,omitempty"`
	Experience          string                      `gorm:"type:varchar(100)" json:"experience,omitempty"`
	TechStack           datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tech_stack,omitempty"`
	Goal                string                      `gorm:"type:text" json:"goal,omitempty"`
	InterviewStyle      string                      `gorm:"type:varchar(20);default:neutral" json:"interview_style"`

	// Analytics counters, mutated only through UserRepository.RecordReportScore.
	// The average is derived from ScoreSum so the update stays a single atomic
	// SQL increment; deleting a report does not adjust these.
	ReportCount    int64   `gorm:"not null;default:0" json:"report_count"`
	InterviewCount int64   `gorm:"not null;default:0" json:"interview_count"`
	ScoreSum       float64 `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AverageScore is the running mean of all overall scores ever recorded for
// this user, including scores of reports deleted later.
func (u *User) AverageScore() float64 {
	if u.InterviewCount == 0 {
		return 0
	}
	return u.ScoreSum / float64(u.InterviewCount)
}
