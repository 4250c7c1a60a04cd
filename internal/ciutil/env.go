package ciutil

import (
	"log/slog"
	"os"

	"github.com/sjnakib/portfolio/internal/redact"
)

// Environment variable names shared by tests and tooling.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCircleCI      = "CIRCLECI"

	// EnvTestDatabaseURL is the preferred name for the test database.
	EnvTestDatabaseURL      = "PORTFOLIO_TEST_DB_URL"
	EnvPortfolioDatabaseURL = "PORTFOLIO_DATABASE_URL"
	EnvDatabaseURL          = "DATABASE_URL"
)

// TestDatabaseURLVars lists the variables checked for a test database, in
// order of preference.
var TestDatabaseURLVars = []string{EnvTestDatabaseURL, EnvPortfolioDatabaseURL, EnvDatabaseURL}

// IsCI reports whether the process runs under a CI provider.
func IsCI() bool {
	for _, name := range []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI} {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// GetEnvWithFallbacks returns the first non-empty variable in envVars, or
// defaultValue. Using anything but the first name is logged at debug level
// with the value redacted.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, name := range envVars {
		val := os.Getenv(name)
		if val == "" {
			continue
		}
		if i > 0 && logger != nil {
			logger.Debug("using fallback environment variable",
				slog.String("used_var", name),
				slog.String("preferred_var", envVars[0]),
				slog.String("value", redact.String(val)))
		}
		return val
	}
	return defaultValue
}
