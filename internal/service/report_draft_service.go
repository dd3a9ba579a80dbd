package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/intervue-backend/internal/apperror"
	"github.com/fadilmartias/intervue-backend/internal/dto"
	"github.com/fadilmartias/intervue-backend/internal/logger"
	"github.com/fadilmartias/intervue-backend/internal/model"
	"github.com/tidwall/gjson"
)

type ReportDraftServiceInterface interface {
	Draft(ctx context.Context, req dto.DraftReportRequest) (*dto.CreateReportRequest, error)
}

// ReportDraftService turns an interview transcript into a draft evaluation
// payload. The draft is returned to the client for review; nothing is
// persisted here.
type ReportDraftService struct {
	gemini GeminiServiceInterface
	log    *logger.Logger
}

func NewReportDraftService(gemini GeminiServiceInterface, log *logger.Logger) *ReportDraftService {
	return &ReportDraftService{
		gemini: gemini,
		log:    log.With("service", "ReportDraftService"),
	}
}

func (s *ReportDraftService) Draft(ctx context.Context, req dto.DraftReportRequest) (*dto.CreateReportRequest, error) {
	transcript := &strings.Builder{}
	for i, turn := range req.Turns {
		fmt.Fprintf(transcript, "Q%d: %s\nA%d: %s\n\n", i+1, turn.Question, i+1, turn.Answer)
	}

	prompt := fmt.Sprintf(`
You are an experienced technical interviewer. Evaluate the candidate's answers in the mock interview transcript below for the role of %s.

Return your answer STRICTLY in JSON format with this schema:
{
  "overall_score": <float, range 0-10>,
  "sections": [
    {
      "title": "<section title, e.g. Technical Depth, Communication, Problem Solving>",
      "weight": <float, relative importance>,
      "metrics": [
        {
          "label": "<what is being measured>",
          "score": {"value": <float 0-10>, "confidence": "<low|medium|high>"},
          "notes": "<short justification>"
        }
      ]
    }
  ]
}

Transcript:
%s
`, req.Role, transcript.String())

	result, err := s.gemini.GenerateContent(ctx, "gemini-2.5-flash", prompt)
	if err != nil {
		s.log.Error("draft generation failed", "role", req.Role, "error", err)
		return nil, apperror.ErrUpstream
	}

	text := strings.TrimSpace(result.Text())
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")

	parsed := gjson.Parse(text)
	if !parsed.Get("sections").IsArray() {
		s.log.Error("draft response missing sections", "text", text)
		return nil, apperror.ErrUpstream
	}

	overall := parsed.Get("overall_score").Float()
	draft := &dto.CreateReportRequest{
		CandidateName: req.CandidateName,
		Role:          req.Role,
		OverallScore:  &overall,
	}

	parsed.Get("sections").ForEach(func(_, sec gjson.Result) bool {
		section := model.Section{
			Title:  sec.Get("title").String(),
			Weight: sec.Get("weight").Float(),
		}
		sec.Get("metrics").ForEach(func(_, m gjson.Result) bool {
			section.Metrics = append(section.Metrics, model.Metric{
				Label: m.Get("label").String(),
				Score: model.Score{
					Value:      m.Get("score.value").Float(),
					Confidence: m.Get("score.confidence").String(),
				},
				Notes: m.Get("notes").String(),
			})
			return true
		})
		draft.Sections = append(draft.Sections, section)
		return true
	})

	return draft, nil
}
