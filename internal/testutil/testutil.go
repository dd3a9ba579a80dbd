package testutil

import (
	"context"
	"testing"

	"github.com/fadilmartias/intervue-backend/internal/logger"
	"github.com/fadilmartias/intervue-backend/internal/model"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB opens a fresh in-memory sqlite database for one test. The connection
// pool is capped at one so concurrent test writers serialize at the driver
// instead of hitting sqlite lock errors.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.User{}, &model.Report{}); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.NewNop()
}

func SeedUser(tb testing.TB, ctx context.Context, db *gorm.DB, email string) *model.User {
	tb.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		tb.Fatalf("hash password: %v", err)
	}
	u := &model.User{
		ID:             uuid.New(),
		Username:       email,
		Email:          email,
		Github:         email,
		Password:       string(hashed),
		InterviewStyle: model.StyleNeutral,
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

// ReportPayloadSections returns a small valid sections slice for report
// fixtures.
func ReportPayloadSections() []model.Section {
	return []model.Section{
		{
			Title:  "Technical Depth",
			Weight: 0.6,
			Metrics: []model.Metric{
				{
					Label: "Data structures",
					Score: model.Score{Value: 7.5, Confidence: model.ConfidenceHigh},
					Notes: "solid fundamentals",
				},
			},
		},
		{
			Title:  "Communication",
			Weight: 0.4,
			Metrics: []model.Metric{
				{
					Label: "Clarity",
					Score: model.Score{Value: 8, Confidence: model.ConfidenceMedium},
				},
			},
		},
	}
}
