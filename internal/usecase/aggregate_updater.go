package usecase

import (
	"context"

	"github.com/fadilmartias/intervue-backend/internal/logger"
	"github.com/fadilmartias/intervue-backend/internal/repository"
	"github.com/google/uuid"
)

// AggregateUpdater maintains the per-user analytics counters after a report
// is created. The report itself is already durable by the time Record runs,
// so a failure here is logged for operators and abandoned; there is exactly
// one attempt and no retry.
type AggregateUpdater struct {
	users *repository.UserRepository
	log   *logger.Logger
}

func NewAggregateUpdater(users *repository.UserRepository, log *logger.Logger) *AggregateUpdater {
	return &AggregateUpdater{
		users: users,
		log:   log.With("component", "AggregateUpdater"),
	}
}

func (u *AggregateUpdater) Record(ctx context.Context, ownerID, reportID uuid.UUID, overallScore float64) error {
	if err := u.users.RecordReportScore(ctx, ownerID, overallScore); err != nil {
		u.log.Error("failed to update user analytics",
			"user_id", ownerID,
			"report_id", reportID,
			"overall_score", overallScore,
			"error", err)
		return err
	}
	return nil
}
