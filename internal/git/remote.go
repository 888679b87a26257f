// Package git derives the owner/repo identifier from the enclosing git
// repository's origin remote, so changelogup can run without an explicit
// --repo flag inside a clone. It uses go-git, so no git CLI is required.
package git

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
)

// openRepo opens a git repository at the specified path or current working
// directory. It uses go-git's PlainOpenWithOptions with DetectDotGit enabled
// to traverse up the directory tree to find the repository root.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// DetectRepository returns the owner/repo identifier of the origin remote of
// the repository enclosing path (or the current directory when path is empty).
func DetectRepository(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("getting origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL")
	}

	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts owner/repo from a GitHub remote URL. It understands
// the https, ssh, and scp-like forms:
//
//	https://github.com/owner/repo.git
//	ssh://git@github.com/owner/repo.git
//	git@github.com:owner/repo.git
func ParseRemoteURL(remoteURL string) (string, error) {
	trimmed := remoteURL

	switch {
	case strings.HasPrefix(trimmed, "https://github.com/"):
		trimmed = strings.TrimPrefix(trimmed, "https://github.com/")
	case strings.HasPrefix(trimmed, "http://github.com/"):
		trimmed = strings.TrimPrefix(trimmed, "http://github.com/")
	case strings.HasPrefix(trimmed, "ssh://git@github.com/"):
		trimmed = strings.TrimPrefix(trimmed, "ssh://git@github.com/")
	case strings.HasPrefix(trimmed, "git@github.com:"):
		trimmed = strings.TrimPrefix(trimmed, "git@github.com:")
	default:
		return "", fmt.Errorf("remote URL %q does not point at github.com", remoteURL)
	}

	trimmed = strings.TrimSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("cannot extract owner/repo from remote URL %q", remoteURL)
	}

	return parts[0] + "/" + parts[1], nil
}
