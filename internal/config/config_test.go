package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/covercomment/internal/config"
)

// setEnv pins every variable Load reads so values leaking in from the host
// environment (CI runs inside Actions itself) cannot influence a test.
func setEnv(t *testing.T, token, repo, eventPath, apiURL string) {
	t.Helper()
	t.Setenv("GITHUB_TOKEN", token)
	t.Setenv("GITHUB_REPOSITORY", repo)
	t.Setenv("GITHUB_EVENT_PATH", eventPath)
	t.Setenv("GITHUB_API_URL", apiURL)
}

func TestLoad_AllSet(t *testing.T) {
	setEnv(t, "ghp_secret", "org/repo", "/tmp/event.json", "https://ghe.example.com/api/v3")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "ghp_secret", cfg.GitHubToken)
	assert.Equal(t, "org/repo", cfg.GitHubRepository)
	assert.Equal(t, "/tmp/event.json", cfg.EventPath)
	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.APIBaseURL)
}

func TestLoad_OptionalVarsDefaultEmpty(t *testing.T) {
	setEnv(t, "ghp_secret", "org/repo", "", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.EventPath)
	assert.Empty(t, cfg.APIBaseURL)
}

func TestLoad_EmptyToken(t *testing.T) {
	setEnv(t, "", "org/repo", "", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
}

func TestLoad_EmptyRepository(t *testing.T) {
	setEnv(t, "ghp_secret", "", "", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_REPOSITORY")
}
