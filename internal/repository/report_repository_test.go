package repository

import (
	"context"
	"testing"
	"time"

	"github.com/fadilmartias/intervue-backend/internal/apperror"
	"github.com/fadilmartias/intervue-backend/internal/model"
	"github.com/fadilmartias/intervue-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReport(ownerID uuid.UUID, candidate string, score float64, createdAt time.Time) *model.Report {
	return &model.Report{
		ID:            uuid.Must(uuid.NewV7()),
		UserID:        ownerID,
		CandidateName: candidate,
		Role:          "Backend Engineer",
		OverallScore:  score,
		Sections:      testutil.ReportPayloadSections(),
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestReportRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewReportRepository(db)

	owner := testutil.SeedUser(t, ctx, db, "owner@example.com")
	report := newReport(owner.ID, "Ada", 8.5, time.Now())
	require.NoError(t, repo.Create(ctx, report))

	got, err := repo.FindByID(ctx, owner.ID, report.ID.String())
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)
	assert.Equal(t, "Ada", got.CandidateName)
	assert.Equal(t, "Backend Engineer", got.Role)
	assert.Equal(t, 8.5, got.OverallScore)
	require.Len(t, got.Sections, 2)
	assert.Equal(t, "Technical Depth", got.Sections[0].Title)
	assert.Equal(t, model.ConfidenceHigh, got.Sections[0].Metrics[0].Score.Confidence)
}

func TestReportRepositoryInvalidID(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewReportRepository(db)

	owner := testutil.SeedUser(t, ctx, db, "owner@example.com")

	_, err := repo.FindByID(ctx, owner.ID, "demo-1")
	assert.ErrorIs(t, err, apperror.ErrInvalidID)

	err = repo.DeleteByID(ctx, owner.ID, "demo-1")
	assert.ErrorIs(t, err, apperror.ErrInvalidID)
}

func TestReportRepositoryOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewReportRepository(db)

	u1 := testutil.SeedUser(t, ctx, db, "u1@example.com")
	u2 := testutil.SeedUser(t, ctx, db, "u2@example.com")

	report := newReport(u1.ID, "Ada", 7, time.Now())
	require.NoError(t, repo.Create(ctx, report))

	// Another owner's report looks exactly like a missing one.
	_, err := repo.FindByID(ctx, u2.ID, report.ID.String())
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	err = repo.DeleteByID(ctx, u2.ID, report.ID.String())
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// The report survived the foreign delete attempt.
	_, err = repo.FindByID(ctx, u1.ID, report.ID.String())
	require.NoError(t, err)

	rows, err := repo.FindByOwner(ctx, u2.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReportRepositoryListOrderAndSummary(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewReportRepository(db)

	owner := testutil.SeedUser(t, ctx, db, "owner@example.com")
	base := time.Now().Add(-time.Hour)
	first := newReport(owner.ID, "first", 5, base)
	second := newReport(owner.ID, "second", 6, base.Add(time.Minute))
	third := newReport(owner.ID, "third", 7, base.Add(2*time.Minute))
	for _, r := range []*model.Report{first, second, third} {
		require.NoError(t, repo.Create(ctx, r))
	}

	rows, err := repo.FindByOwner(ctx, owner.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "third", rows[0].CandidateName)
	assert.Equal(t, "second", rows[1].CandidateName)
	assert.Equal(t, "first", rows[2].CandidateName)

	// Summary rows omit sections.
	assert.Empty(t, rows[0].Sections)

	count, err := repo.CountByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestReportRepositoryListTieBreak(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewReportRepository(db)

	owner := testutil.SeedUser(t, ctx, db, "owner@example.com")
	at := time.Now().Truncate(time.Second)
	older := newReport(owner.ID, "older", 5, at)
	newer := newReport(owner.ID, "newer", 6, at)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	// Same created_at: the later insertion (larger UUIDv7) comes first.
	rows, err := repo.FindByOwner(ctx, owner.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "newer", rows[0].CandidateName)
	assert.Equal(t, "older", rows[1].CandidateName)
}

func TestReportRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewReportRepository(db)

	owner := testutil.SeedUser(t, ctx, db, "owner@example.com")
	report := newReport(owner.ID, "Ada", 8, time.Now())
	require.NoError(t, repo.Create(ctx, report))

	require.NoError(t, repo.DeleteByID(ctx, owner.ID, report.ID.String()))

	_, err := repo.FindByID(ctx, owner.ID, report.ID.String())
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	err = repo.DeleteByID(ctx, owner.ID, report.ID.String())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestReportRepositoryPagination(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewReportRepository(db)

	owner := testutil.SeedUser(t, ctx, db, "owner@example.com")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		r := newReport(owner.ID, "candidate", float64(i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(ctx, r))
	}

	page1, err := repo.FindByOwner(ctx, owner.ID, 0, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, 4.0, page1[0].OverallScore)

	page3, err := repo.FindByOwner(ctx, owner.ID, 4, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, 0.0, page3[0].OverallScore)
}
