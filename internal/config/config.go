// Package config loads application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the configuration for one run, resolved once at startup and
// passed explicitly into the orchestration. Nothing below reads the process
// environment after Load returns.
type Config struct {
	// GitHubToken is the bearer credential for API calls.
	GitHubToken string `env:"GITHUB_TOKEN,notEmpty"`
	// GitHubRepository is the "owner/repo" slug the PR lives in.
	GitHubRepository string `env:"GITHUB_REPOSITORY,notEmpty"`
	// EventPath points at the Actions webhook payload JSON. Optional; when
	// empty the fork check is skipped and the PR is treated as same-repo.
	EventPath string `env:"GITHUB_EVENT_PATH"`
	// APIBaseURL overrides the GitHub API endpoint (GitHub Enterprise, tests).
	APIBaseURL string `env:"GITHUB_API_URL"`
}

// Load reads configuration from the environment and returns a validated
// Config. A .env file in the working directory is merged in first, for local
// runs outside CI; its absence is not an error. GITHUB_TOKEN and
// GITHUB_REPOSITORY must be present and non-empty.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}
