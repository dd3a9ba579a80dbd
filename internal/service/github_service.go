package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/intervue-backend/internal/apperror"
	"github.com/fadilmartias/intervue-backend/internal/config"
	"github.com/fadilmartias/intervue-backend/internal/dto"
	"github.com/fadilmartias/intervue-backend/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type GithubServiceInterface interface {
	AnalyzeProfile(ctx context.Context, username string) (*dto.GithubProfileDTO, error)
}

// GithubService reads a user's public profile and repositories from the
// GitHub REST API and condenses them into the onboarding summary.
type GithubService struct {
	client *resty.Client
	log    *logger.Logger
}

func NewGithubService(log *logger.Logger) *GithubService {
	cfg := config.LoadGithubConfig()
	client := resty.New().SetBaseURL(cfg.BaseURL)
	client.SetHeader("Accept", "application/vnd.github+json")
	if cfg.Token != "" {
		client.SetHeader("Authorization", "Bearer "+cfg.Token)
	}
	return &GithubService{
		client: client,
		log:    log.With("service", "GithubService"),
	}
}

func (s *GithubService) AnalyzeProfile(ctx context.Context, username string) (*dto.GithubProfileDTO, error) {
	profile, err := s.get(ctx, fmt.Sprintf("/users/%s", username))
	if err != nil {
		return nil, err
	}

	repos, err := s.get(ctx, fmt.Sprintf("/users/%s/repos?per_page=100&sort=updated", username))
	if err != nil {
		return nil, err
	}

	languages := map[string]int{}
	gjson.Parse(repos).ForEach(func(_, repo gjson.Result) bool {
		if lang := repo.Get("language").String(); lang != "" {
			languages[lang]++
		}
		return true
	})

	return &dto.GithubProfileDTO{
		Username:     username,
		Name:         gjson.Get(profile, "name").String(),
		Bio:          gjson.Get(profile, "bio").String(),
		PublicRepos:  gjson.Get(profile, "public_repos").Int(),
		Followers:    gjson.Get(profile, "followers").Int(),
		TopLanguages: languages,
	}, nil
}

func (s *GithubService) get(ctx context.Context, path string) (string, error) {
	resp, err := s.client.R().SetContext(ctx).Get(path)
	if err != nil {
		s.log.Error("github request failed", "path", path, "error", err)
		return "", apperror.ErrUpstream
	}
	if resp.StatusCode() == 404 {
		return "", apperror.ErrNotFound
	}
	if resp.IsError() {
		s.log.Error("github returned error status", "path", path, "status", resp.StatusCode())
		return "", apperror.ErrUpstream
	}
	return resp.String(), nil
}
