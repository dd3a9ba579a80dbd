package dto

import (
	"fmt"
	"time"

	"github.com/fadilmartias/intervue-backend/internal/apperror"
	"github.com/fadilmartias/intervue-backend/internal/model"
	"github.com/google/uuid"
)

// CreateReportRequest is the report submission payload. The owner, id, and
// timestamps are never accepted from the client.
type CreateReportRequest struct {
	CandidateName string          `json:"candidate_name"`
	Role          string          `json:"role"`
	OverallScore  *float64        `json:"overall_score"`
	Sections      []model.Section `json:"sections"`
}

func (r *CreateReportRequest) Validate() error {
	fields := map[string]string{}
	if r.CandidateName == "" {
		fields["candidate_name"] = "candidate_name is required"
	}
	if r.Role == "" {
		fields["role"] = "role is required"
	}
	if r.OverallScore == nil {
		fields["overall_score"] = "overall_score is required"
	} else if *r.OverallScore < 0 || *r.OverallScore > 10 {
		fields["overall_score"] = "overall_score must be between 0 and 10"
	}
	if r.Sections == nil {
		fields["sections"] = "sections is required"
	}
	for i, s := range r.Sections {
		if s.Title == "" {
			fields[fmt.Sprintf("sections.%d.title", i)] = "title is required"
		}
		for j, m := range s.Metrics {
			if m.Label == "" {
				fields[fmt.Sprintf("sections.%d.metrics.%d.label", i, j)] = "label is required"
			}
			if m.Score.Value < 0 || m.Score.Value > 10 {
				fields[fmt.Sprintf("sections.%d.metrics.%d.score.value", i, j)] = "score value must be between 0 and 10"
			}
			switch m.Score.Confidence {
			case model.ConfidenceLow, model.ConfidenceMedium, model.ConfidenceHigh:
			default:
				fields[fmt.Sprintf("sections.%d.metrics.%d.score.confidence", i, j)] = "confidence must be one of low, medium, high"
			}
		}
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

// ReportSummaryDTO omits sections; used by the list endpoint.
type ReportSummaryDTO struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	CandidateName string    `json:"candidate_name"`
	Role          string    `json:"role"`
	OverallScore  float64   `json:"overall_score"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewReportSummaryDTO(r *model.Report) ReportSummaryDTO {
	return ReportSummaryDTO{
		ID:            r.ID,
		Title:         fmt.Sprintf("%s - %s", r.CandidateName, r.Role),
		CandidateName: r.CandidateName,
		Role:          r.Role,
		OverallScore:  r.OverallScore,
		CreatedAt:     r.CreatedAt,
	}
}

type ReportDTO struct {
	ID            uuid.UUID       `json:"id"`
	CandidateName string          `json:"candidate_name"`
	Role          string          `json:"role"`
	OverallScore  float64         `json:"overall_score"`
	Sections      []model.Section `json:"sections"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func NewReportDTO(r *model.Report) ReportDTO {
	return ReportDTO{
		ID:            r.ID,
		CandidateName: r.CandidateName,
		Role:          r.Role,
		OverallScore:  r.OverallScore,
		Sections:      r.Sections,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// DraftReportRequest is an interview transcript to turn into a draft
// evaluation via the AI service. Nothing is persisted.
type DraftReportRequest struct {
	CandidateName string      `json:"candidate_name"`
	Role          string      `json:"role"`
	Turns         []DraftTurn `json:"turns"`
}

type DraftTurn struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (r *DraftReportRequest) Validate() error {
	fields := map[string]string{}
	if r.CandidateName == "" {
		fields["candidate_name"] = "candidate_name is required"
	}
	if r.Role == "" {
		fields["role"] = "role is required"
	}
	if len(r.Turns) == 0 {
		fields["turns"] = "at least one transcript turn is required"
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}
