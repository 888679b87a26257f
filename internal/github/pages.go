package github

import (
	"context"

	"github.com/google/go-github/v71/github"

	"github.com/ariel-frischer/changelogup/internal/changelog"
)

// pageSequence is a lazy, finite, non-restartable sequence of commit pages.
// Each Next call issues one blocking listing request; once exhausted the
// sequence stays exhausted.
type pageSequence struct {
	client *Client
	page   int
	done   bool
}

// pages starts a fresh sequence at the first page.
func (c *Client) pages() *pageSequence {
	return &pageSequence{client: c, page: 1}
}

// Next fetches the next page of commit records. It returns ok=false once the
// sequence is exhausted. A fetch error exhausts the sequence.
func (s *pageSequence) Next(ctx context.Context) ([]changelog.Commit, bool, error) {
	if s.done {
		return nil, false, nil
	}

	c := s.client
	if c.opts.OnPage != nil {
		c.opts.OnPage(s.page)
	}

	listOpts := &github.CommitsListOptions{
		SHA: c.opts.Branch,
		ListOptions: github.ListOptions{
			Page:    s.page,
			PerPage: c.opts.PerPage,
		},
	}

	raw, resp, err := c.gh.Repositories.ListCommits(ctx, c.owner, c.repo, listOpts)
	if err != nil {
		s.done = true
		// The API answers 409 for a repository with no commits; that is a
		// valid empty sequence, not a failure.
		if isEmptyRepo(err) {
			return nil, false, nil
		}
		return nil, false, c.mapError(err)
	}

	commits := make([]changelog.Commit, 0, len(raw))
	for _, rc := range raw {
		commit, err := newCommit(rc)
		if err != nil {
			s.done = true
			return nil, false, err
		}
		commits = append(commits, commit)
	}

	if resp.NextPage == 0 {
		s.done = true
	} else {
		s.page = resp.NextPage
	}

	return commits, true, nil
}
