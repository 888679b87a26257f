package errors

import "fmt"

// Common error messages for the changelogup CLI.
// These templates ensure consistent, actionable error messages.

// MissingToken creates an error for a missing GitHub access token.
func MissingToken() *CLIError {
	return NewConfigError(
		"GitHub access token is required",
		"Pass it with --token <token>",
		"Or export GITHUB_TOKEN in your environment",
		"Or set 'token' in .changelogup/config.yml",
		"Create a token at https://github.com/settings/tokens",
	)
}

// MissingRepository creates an error for a missing repository identifier.
func MissingRepository() *CLIError {
	return NewConfigError(
		"repository identifier is required",
		"Pass it with --repo <owner>/<repo>",
		"Or run changelogup inside a clone with an 'origin' remote on GitHub",
		"Or set 'repository' in .changelogup/config.yml",
	)
}

// InvalidRepositoryFormat creates an error for a malformed repository identifier.
func InvalidRepositoryFormat(provided string) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("invalid repository identifier: %q", provided),
		Usage:    "changelogup generate --repo <owner>/<repo>",
		Remediation: []string{
			"Repository identifiers must be in owner/repo form (e.g., acme/widgets)",
		},
	}
}

// AuthenticationFailed creates an error for a rejected token (HTTP 401).
func AuthenticationFailed(repo string) *CLIError {
	return NewAuthenticationError(
		fmt.Sprintf("GitHub rejected the access token for %s", repo),
		"Check that the token is valid and not expired",
		"Fine-grained tokens need the 'Contents' read permission",
		"Verify with: curl -H \"Authorization: Bearer $GITHUB_TOKEN\" https://api.github.com/user",
	)
}

// RepositoryNotFound creates an error for an unresolvable repository (HTTP 404).
func RepositoryNotFound(repo string) *CLIError {
	return NewNotFoundError(
		fmt.Sprintf("repository not found: %s", repo),
		"Check the owner/repo spelling",
		"Private repositories need a token with access to them",
	)
}

// RateLimited creates an error for API quota exhaustion (HTTP 403/429).
func RateLimited(repo string, resetHint string) *CLIError {
	remediation := []string{
		"Wait for the rate limit window to reset before retrying",
		"Authenticated requests get 5000 requests/hour instead of 60",
	}
	if resetHint != "" {
		remediation = append([]string{"Rate limit resets at " + resetHint}, remediation...)
	}
	return NewRateLimitError(
		fmt.Sprintf("GitHub API rate limit exceeded while fetching %s", repo),
		remediation...,
	)
}

// FetchFailed creates an error for transport-level failures reaching the API.
func FetchFailed(repo string, err error) *CLIError {
	return WrapWithMessage(err, Network,
		fmt.Sprintf("failed to reach the GitHub API for %s", repo),
		"Check your network connection",
		"Check https://www.githubstatus.com for outages",
	)
}

// WriteFailed creates an error for an unwritable changelog path.
func WriteFailed(path string, err error) *CLIError {
	return WrapWithMessage(err, IO,
		fmt.Sprintf("cannot write changelog to %s", path),
		"Check that the parent directory exists",
		"Check file permissions: ls -la "+path,
	)
}

// ConfigParseError creates an error for an invalid config file.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse config file: %s", path),
		"Check the file for YAML syntax errors",
		"Reset to defaults with: changelogup config init --force",
	)
}
