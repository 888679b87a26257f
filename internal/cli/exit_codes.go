package cli

import "github.com/ariel-frischer/changelogup/internal/errors"

// Exit codes for the changelogup CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitRuntime indicates an uncategorized runtime failure
	ExitRuntime = 1

	// ExitConfiguration indicates invalid arguments or configuration
	ExitConfiguration = 2

	// ExitAuthentication indicates the GitHub token was rejected
	ExitAuthentication = 3

	// ExitNotFound indicates the repository could not be resolved
	ExitNotFound = 4

	// ExitRateLimit indicates the API rate limit was exhausted
	ExitRateLimit = 5

	// ExitNetwork indicates a transport-level failure
	ExitNetwork = 6

	// ExitIO indicates the changelog file could not be written
	ExitIO = 7
)

// ExitCodeFor maps an error to the process exit code for its category.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch errors.CategoryOf(err) {
	case errors.Argument, errors.Configuration:
		return ExitConfiguration
	case errors.Authentication:
		return ExitAuthentication
	case errors.NotFound:
		return ExitNotFound
	case errors.RateLimit:
		return ExitRateLimit
	case errors.Network:
		return ExitNetwork
	case errors.IO:
		return ExitIO
	default:
		return ExitRuntime
	}
}
