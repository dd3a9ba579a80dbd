package repository

import (
	"context"
	"errors"

	"github.com/fadilmartias/intervue-backend/internal/apperror"
	"github.com/fadilmartias/intervue-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRepository scopes every read and delete by owner at the SQL level, so
// a caller bug cannot leak another user's reports. Report IDs arrive as raw
// strings and fail apperror.ErrInvalidID before any query runs.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db}
}

func (r *ReportRepository) Create(ctx context.Context, report *model.Report) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return err
	}
	return nil
}

func (r *ReportRepository) FindByID(ctx context.Context, ownerID uuid.UUID, id string) (*model.Report, error) {
	reportID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.ErrInvalidID
	}

	var report model.Report
	err = r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", reportID, ownerID).
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Ownership mismatch is indistinguishable from absence.
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// FindByOwner returns summary rows (sections omitted) ordered newest first.
// IDs are UUIDv7, so the id ordering breaks created_at ties in insertion
// order.
func (r *ReportRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]model.Report, error) {
	var reports []model.Report
	q := r.db.WithContext(ctx).
		Select("id", "user_id", "candidate_name", "role", "overall_score", "created_at").
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Report{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *ReportRepository) DeleteByID(ctx context.Context, ownerID uuid.UUID, id string) error {
	reportID, err := uuid.Parse(id)
	if err != nil {
		return apperror.ErrInvalidID
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", reportID, ownerID).
		Delete(&model.Report{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
