package dto

import (
	"time"

	"github.com/fadilmartias/intervue-backend/internal/apperror"
	"github.com/fadilmartias/intervue-backend/internal/model"
	"github.com/google/uuid"
)

type UserDTO struct {
	ID                  uuid.UUID `json:"id"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	Github              string    `json:"github"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	Role                string    `json:"role,omitempty"`
	Experience          string    `json:"experience,omitempty"`
	TechStack           []string  `json:"tech_stack,omitempty"`
	Goal                string    `json:"goal,omitempty"`
	InterviewStyle      string    `json:"interview_style"`
	CreatedAt           time.Time `json:"created_at"`
}

func NewUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:                  u.ID,
		Username:            u.Username,
		Email:               u.Email,
		Github:              u.Github,
		OnboardingCompleted: u.OnboardingCompleted,
		Role:                u.Role,
		Experience:          u.Experience,
		TechStack:           u.TechStack,
		Goal:                u.Goal,
		InterviewStyle:      u.InterviewStyle,
		CreatedAt:           u.CreatedAt,
	}
}

// UserStatsDTO is the per-user aggregate view. AverageScore is derived from
// the stored score sum at read time.
type UserStatsDTO struct {
	ReportCount    int64   `json:"report_count"`
	InterviewCount int64   `json:"interview_count"`
	AverageScore   float64 `json:"average_score"`
}

func NewUserStatsDTO(u *model.User) UserStatsDTO {
	return UserStatsDTO{
		ReportCount:    u.ReportCount,
		InterviewCount: u.InterviewCount,
		AverageScore:   u.AverageScore(),
	}
}

type OnboardingRequest struct {
	Role           string   `json:"role"`
	Experience     string   `json:"experience"`
	TechStack      []string `json:"tech_stack"`
	Goal           string   `json:"goal"`
	InterviewStyle string   `json:"interview_style"`
}

func (r *OnboardingRequest) Validate() error {
	fields := map[string]string{}
	switch r.InterviewStyle {
	case "", model.StyleFriendly, model.StyleNeutral, model.StyleStrict:
	default:
		fields["interview_style"] = "interview_style must be one of friendly, neutral, strict"
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

// GithubProfileDTO is the compact summary returned by the GitHub analysis
// endpoint.
type GithubProfileDTO struct {
	Username     string         `json:"username"`
	Name         string         `json:"name,omitempty"`
	Bio          string         `json:"bio,omitempty"`
	PublicRepos  int64          `json:"public_repos"`
	Followers    int64          `json:"followers"`
	TopLanguages map[string]int `json:"top_languages"`
}
