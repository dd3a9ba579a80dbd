package config

import (
	"os"
	"sync"
)

type GithubConfig struct {
	Token   string // optional, raises the API rate limit
	BaseURL string
}

var (
	githubConfig *GithubConfig
	githubOnce   sync.Once
)

func LoadGithubConfig() *GithubConfig {
	githubOnce.Do(func() {
		baseURL := os.Getenv("GITHUB_API_URL")
		if baseURL == "" {
			baseURL = "https://api.github.com"
		}
		githubConfig = &GithubConfig{
			Token:   os.Getenv("GITHUB_TOKEN"),
			BaseURL: baseURL,
		}
	})
	return githubConfig
}
