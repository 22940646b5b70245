package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnector_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGithubListRepos_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "created", r.URL.Query().Get("sort"))
		assert.Equal(t, "asc", r.URL.Query().Get("direction"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "hello-world", "full_name": "octocat/hello-world",
			 "html_url": "https://github.com/octocat/hello-world",
			 "stargazers_count": 42, "watchers_count": 42, "forks_count": 7}
		]`))
	}))
	defer server.Close()

	svc := NewGithubService(server.URL, "")
	repos, err := svc.ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "hello-world", repos[0].Name)
	assert.Equal(t, 42, repos[0].StargazersCount)
}

func TestGithubListRepos_SendsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	svc := NewGithubService(server.URL, "gh-token")
	_, err := svc.ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
}

func TestGithubListRepos_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewGithubService(server.URL, "")
	_, err := svc.ListRepos(context.Background(), "no-such-user")
	assert.ErrorIs(t, err, apperrors.ErrNoGithubProfile)
}

func TestGithubListRepos_UpstreamDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // транспортная ошибка

	svc := NewGithubService(server.URL, "")
	_, err := svc.ListRepos(context.Background(), "octocat")
	assert.ErrorIs(t, err, apperrors.ErrNoGithubProfile)
}

func TestGithubListRepos_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer server.Close()

	svc := NewGithubService(server.URL, "")
	_, err := svc.ListRepos(context.Background(), "octocat")
	assert.ErrorIs(t, err, apperrors.ErrNoGithubProfile)
}
