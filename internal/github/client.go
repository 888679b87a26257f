// Package github fetches commit history from the GitHub REST API and maps it
// into changelog commit records. The client is constructed per run - there is
// no package-level API state - and listing is read-only with respect to the
// remote repository.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v71/github"

	"github.com/ariel-frischer/changelogup/internal/changelog"
	cerrors "github.com/ariel-frischer/changelogup/internal/errors"
)

// Options tunes how commits are listed. The zero value is usable.
type Options struct {
	// PerPage is the page size for listing requests (API max 100).
	PerPage int
	// Branch restricts the listing to a branch, tag, or SHA.
	// Empty means the repository's default branch.
	Branch string
	// MaxCommits caps the total number of commits fetched. 0 means no cap.
	MaxCommits int
	// BaseURL overrides the API endpoint. Used by tests.
	BaseURL string
	// OnPage is invoked before each page request with the 1-based page number.
	OnPage func(page int)
}

// Client lists commits for a single repository with bearer-token auth.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
	opts  Options
}

// NewClient builds a client for the given owner/repo identifier.
func NewClient(token, repo string, opts Options) (*Client, error) {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid repository identifier %q", repo)
	}
	if opts.PerPage <= 0 || opts.PerPage > 100 {
		opts.PerPage = 100
	}

	gh := github.NewClient(nil).WithAuthToken(token)
	if opts.BaseURL != "" {
		base, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing base URL: %w", err)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		gh.BaseURL = base
	}

	return &Client{
		gh:    gh,
		owner: parts[0],
		repo:  parts[1],
		opts:  opts,
	}, nil
}

// Repository returns the owner/repo identifier the client was built for.
func (c *Client) Repository() string {
	return c.owner + "/" + c.repo
}

// FetchAll retrieves the complete commit list in the API's native order
// (most-recent-first), draining the page sequence before returning. An empty
// result is valid. Errors are returned as categorized CLIErrors and are never
// retried here.
func (c *Client) FetchAll(ctx context.Context) ([]changelog.Commit, error) {
	seq := c.pages()
	var all []changelog.Commit

	for {
		page, ok, err := seq.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		all = append(all, page...)

		if c.opts.MaxCommits > 0 && len(all) >= c.opts.MaxCommits {
			all = all[:c.opts.MaxCommits]
			break
		}
	}

	return all, nil
}

// newCommit maps one API response record to a commit record, failing fast
// when the response is missing the commit payload.
func newCommit(rc *github.RepositoryCommit) (changelog.Commit, error) {
	if rc.GetCommit() == nil {
		return changelog.Commit{}, cerrors.NewRuntimeError(
			fmt.Sprintf("commit %s: response is missing the commit payload", rc.GetSHA()),
			"The GitHub API returned an unexpected response shape; try again",
		)
	}

	commit := rc.GetCommit()
	author := commit.GetAuthor().GetName()
	if author == "" {
		author = rc.GetAuthor().GetLogin()
	}
	if author == "" {
		author = "unknown"
	}

	return changelog.Commit{
		SHA:     rc.GetSHA(),
		Author:  author,
		Date:    commit.GetAuthor().GetDate().Time,
		Message: commit.GetMessage(),
	}, nil
}
