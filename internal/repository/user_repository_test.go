package repository

import (
	"context"
	"testing"

	"github.com/fadilmartias/intervue-backend/internal/apperror"
	"github.com/fadilmartias/intervue-backend/internal/model"
	"github.com/fadilmartias/intervue-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestUserRepositoryCreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewUserRepository(db)

	user := &model.User{
		ID:             uuid.New(),
		Username:       "ada",
		Email:          "ada@example.com",
		Github:         "ada",
		Password:       "hashed",
		InterviewStyle: model.StyleNeutral,
	}
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", byID.Username)
	assert.EqualValues(t, 0, byID.ReportCount)
	assert.EqualValues(t, 0, byID.InterviewCount)
	assert.Equal(t, 0.0, byID.AverageScore())

	byEmail, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUserRepositoryDuplicate(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewUserRepository(db)

	testutil.SeedUser(t, ctx, db, "ada@example.com")

	dup := &model.User{
		ID:             uuid.New(),
		Username:       "other",
		Email:          "ada@example.com",
		Github:         "other",
		Password:       "hashed",
		InterviewStyle: model.StyleNeutral,
	}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestUserRepositoryRecordReportScore(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewUserRepository(db)

	user := testutil.SeedUser(t, ctx, db, "ada@example.com")

	require.NoError(t, repo.RecordReportScore(ctx, user.ID, 7.0))
	require.NoError(t, repo.RecordReportScore(ctx, user.ID, 9.0))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.ReportCount)
	assert.EqualValues(t, 2, got.InterviewCount)
	assert.InDelta(t, 8.0, got.AverageScore(), 1e-9)
}

func TestUserRepositoryRecordReportScoreUnknownUser(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewUserRepository(db)

	err := repo.RecordReportScore(ctx, uuid.New(), 5)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUserRepositoryUpdateProfile(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewUserRepository(db)

	user := testutil.SeedUser(t, ctx, db, "ada@example.com")

	updates := map[string]interface{}{
		"role":                 "Backend Engineer",
		"experience":           "3-5 years",
		"tech_stack":           datatypes.NewJSONSlice([]string{"go", "postgres"}),
		"goal":                 "pass the next onsite",
		"interview_style":      model.StyleStrict,
		"onboarding_completed": true,
	}
	require.NoError(t, repo.UpdateProfile(ctx, user.ID, updates))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.OnboardingCompleted)
	assert.Equal(t, "Backend Engineer", got.Role)
	assert.Equal(t, model.StyleStrict, got.InterviewStyle)
	assert.Equal(t, []string{"go", "postgres"}, []string(got.TechStack))

	err = repo.UpdateProfile(ctx, uuid.New(), updates)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
