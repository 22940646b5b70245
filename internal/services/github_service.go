package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"devconnector_backend/internal/logger"
	"devconnector_backend/pkg/apperrors"
)

// GithubRepo - срез полей ответа Github, которые нужны клиенту
type GithubRepo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	WatchersCount   int    `json:"watchers_count"`
	ForksCount      int    `json:"forks_count"`
}

// GithubService - внешний клиент листинга репозиториев.
// Любой сбой апстрима деградирует в "No Github profile found":
// транспортные детали наружу не уходят.
type GithubService interface {
	ListRepos(ctx context.Context, username string) ([]GithubRepo, error)
}

type githubClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewGithubService(baseURL, token string) GithubService {
	return &githubClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *githubClient) ListRepos(ctx context.Context, username string) ([]GithubRepo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created&direction=asc",
		c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	req.Header.Set("User-Agent", "devconnector-backend")
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.CtxWithError(ctx, "github request failed", err, "username", username)
		return nil, apperrors.ErrNoGithubProfile
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.CtxWarn(ctx, "github returned non-200",
			"username", username,
			"status", resp.StatusCode,
			"body", strings.TrimSpace(string(body)),
		)
		return nil, apperrors.ErrNoGithubProfile
	}

	var repos []GithubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		logger.CtxWithError(ctx, "github response decode failed", err, "username", username)
		return nil, apperrors.ErrNoGithubProfile
	}
	return repos, nil
}
