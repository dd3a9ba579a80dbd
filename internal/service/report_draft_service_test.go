package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/intervue-backend/internal/apperror"
	"github.com/fadilmartias/intervue-backend/internal/dto"
	"github.com/fadilmartias/intervue-backend/internal/logger"
	"github.com/fadilmartias/intervue-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type stubGemini struct {
	text string
	err  error
}

func (s *stubGemini) GenerateContent(ctx context.Context, modelName string, prompt string) (*genai.GenerateContentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(s.text, genai.RoleModel)},
		},
	}, nil
}

func draftReq() dto.DraftReportRequest {
	return dto.DraftReportRequest{
		CandidateName: "Ada",
		Role:          "Backend Engineer",
		Turns: []dto.DraftTurn{
			{Question: "Explain a mutex.", Answer: "It serializes access to shared state."},
		},
	}
}

func TestReportDraftServiceParsesResponse(t *testing.T) {
	gemini := &stubGemini{text: "```json\n" + `{
		"overall_score": 7.5,
		"sections": [
			{
				"title": "Technical Depth",
				"weight": 0.7,
				"metrics": [
					{"label": "Concurrency", "score": {"value": 8, "confidence": "high"}, "notes": "clear answer"}
				]
			}
		]
	}` + "\n```"}

	svc := NewReportDraftService(gemini, logger.NewNop())
	draft, err := svc.Draft(context.Background(), draftReq())
	require.NoError(t, err)

	assert.Equal(t, "Ada", draft.CandidateName)
	assert.Equal(t, "Backend Engineer", draft.Role)
	require.NotNil(t, draft.OverallScore)
	assert.Equal(t, 7.5, *draft.OverallScore)
	require.Len(t, draft.Sections, 1)
	assert.Equal(t, "Technical Depth", draft.Sections[0].Title)
	require.Len(t, draft.Sections[0].Metrics, 1)
	assert.Equal(t, model.ConfidenceHigh, draft.Sections[0].Metrics[0].Score.Confidence)

	// The draft passes submission validation as-is.
	assert.NoError(t, draft.Validate())
}

func TestReportDraftServiceUpstreamFailure(t *testing.T) {
	svc := NewReportDraftService(&stubGemini{err: errors.New("boom")}, logger.NewNop())
	_, err := svc.Draft(context.Background(), draftReq())
	assert.ErrorIs(t, err, apperror.ErrUpstream)
}

func TestReportDraftServiceMalformedResponse(t *testing.T) {
	svc := NewReportDraftService(&stubGemini{text: "sorry, I cannot help with that"}, logger.NewNop())
	_, err := svc.Draft(context.Background(), draftReq())
	assert.ErrorIs(t, err, apperror.ErrUpstream)
}
