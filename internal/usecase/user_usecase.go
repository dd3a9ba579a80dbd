package usecase

import (
	"context"

	"github.com/fadilmartias/intervue-backend/internal/apperror"
	"github.com/fadilmartias/intervue-backend/internal/dto"
	"github.com/fadilmartias/intervue-backend/internal/logger"
	"github.com/fadilmartias/intervue-backend/internal/repository"
	"github.com/fadilmartias/intervue-backend/internal/service"
	"github.com/google/uuid"
)

type UserUsecase struct {
	users  *repository.UserRepository
	github service.GithubServiceInterface
	log    *logger.Logger
}

func NewUserUsecase(users *repository.UserRepository, github service.GithubServiceInterface, log *logger.Logger) *UserUsecase {
	return &UserUsecase{
		users:  users,
		github: github,
		log:    log.With("usecase", "UserUsecase"),
	}
}

func (uc *UserUsecase) Stats(ctx context.Context, id uuid.UUID) (*dto.UserStatsDTO, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	stats := dto.NewUserStatsDTO(user)
	return &stats, nil
}

func (uc *UserUsecase) AnalyzeGithub(ctx context.Context, id uuid.UUID) (*dto.GithubProfileDTO, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Github == "" {
		return nil, apperror.ErrNotFound
	}
	return uc.github.AnalyzeProfile(ctx, user.Github)
}
