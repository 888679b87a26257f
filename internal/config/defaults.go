package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# Changelogup Configuration
# All values can be overridden by CHANGELOGUP_* environment variables and CLI flags.

# GitHub access
token: ""                 # Personal access token (prefer GITHUB_TOKEN env var)
repository: ""            # owner/repo (empty = detect from the origin remote)

# Output
output: CHANGELOG.md      # Path the rendered changelog is written to
categorize: false         # Group entries into conventional-commit sections

# Fetching
branch: ""                # Branch, tag, or SHA to list commits from (empty = default branch)
per_page: 100             # Commits per API page (1-100)
max_commits: 0            # Cap on fetched commits (0 = all)
timeout: 30               # Request timeout in seconds (0 = no timeout)
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"token":      "",
		"repository": "",
		// output: CHANGELOG.md in the current directory, matching the
		// conventional location.
		"output": "CHANGELOG.md",
		"branch": "",
		// per_page: 100 is the API maximum; fewer pages means fewer requests
		// against the rate limit.
		"per_page":    100,
		"max_commits": 0,
		"categorize":  false,
		// timeout: seconds per run. 30s is generous for a paginated listing.
		"timeout": 30,
	}
}
