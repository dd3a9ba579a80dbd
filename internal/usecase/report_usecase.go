package usecase

import (
	"context"
	"time"

	"github.com/fadilmartias/intervue-backend/internal/dto"
	"github.com/fadilmartias/intervue-backend/internal/logger"
	"github.com/fadilmartias/intervue-backend/internal/model"
	"github.com/fadilmartias/intervue-backend/internal/repository"
	"github.com/fadilmartias/intervue-backend/internal/response"
	"github.com/fadilmartias/intervue-backend/internal/service"
	"github.com/google/uuid"
)

type ReportUsecase struct {
	reports *repository.ReportRepository
	updater *AggregateUpdater
	drafter service.ReportDraftServiceInterface
	log     *logger.Logger
}

func NewReportUsecase(reports *repository.ReportRepository, updater *AggregateUpdater, drafter service.ReportDraftServiceInterface, log *logger.Logger) *ReportUsecase {
	return &ReportUsecase{
		reports: reports,
		updater: updater,
		drafter: drafter,
		log:     log.With("usecase", "ReportUsecase"),
	}
}

// Create persists a report owned by the authenticated principal and then
// folds its score into the owner's analytics. The analytics update is
// best-effort: its failure is logged and the creation still succeeds.
func (uc *ReportUsecase) Create(ctx context.Context, ownerID uuid.UUID, req dto.CreateReportRequest) (*model.Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	report := &model.Report{
		ID:            uuid.Must(uuid.NewV7()),
		UserID:        ownerID,
		CandidateName: req.CandidateName,
		Role:          req.Role,
		OverallScore:  *req.OverallScore,
		Sections:      req.Sections,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.reports.Create(ctx, report); err != nil {
		return nil, err
	}

	if err := uc.updater.Record(ctx, ownerID, report.ID, report.OverallScore); err != nil {
		// Already logged by the updater; the report is durable, so the caller
		// still gets a success.
		uc.log.Warn("report created but analytics update was lost",
			"report_id", report.ID, "user_id", ownerID)
	}

	return report, nil
}

func (uc *ReportUsecase) List(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]dto.ReportSummaryDTO, *response.Pagination, error) {
	offset, limit := 0, 0
	var pagination *response.Pagination
	if page > 0 && pageSize > 0 {
		offset = (page - 1) * pageSize
		limit = pageSize
	}

	reports, err := uc.reports.FindByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, nil, err
	}

	summaries := make([]dto.ReportSummaryDTO, 0, len(reports))
	for i := range reports {
		summaries = append(summaries, dto.NewReportSummaryDTO(&reports[i]))
	}

	if limit > 0 {
		total, err := uc.reports.CountByOwner(ctx, ownerID)
		if err != nil {
			return nil, nil, err
		}
		totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
		pagination = &response.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
			TotalItems: total,
			HasMore:    int64(page) < totalPages,
			From:       offset + 1,
			To:         offset + len(summaries),
		}
	}

	return summaries, pagination, nil
}

func (uc *ReportUsecase) Get(ctx context.Context, ownerID uuid.UUID, reportID string) (*model.Report, error) {
	return uc.reports.FindByID(ctx, ownerID, reportID)
}

// Delete removes a report owned by the principal. The owner's analytics keep
// the deleted report's contribution; the counters are a historical record.
func (uc *ReportUsecase) Delete(ctx context.Context, ownerID uuid.UUID, reportID string) error {
	return uc.reports.DeleteByID(ctx, ownerID, reportID)
}

func (uc *ReportUsecase) Draft(ctx context.Context, req dto.DraftReportRequest) (*dto.CreateReportRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return uc.drafter.Draft(ctx, req)
}
