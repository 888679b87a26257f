package github

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/go-github/v71/github"

	cerrors "github.com/ariel-frischer/changelogup/internal/errors"
)

// mapError translates go-github errors into the CLI error taxonomy:
// 401 -> Authentication, 404 -> NotFound, 403/429 -> RateLimit, anything
// transport-level -> Network.
func (c *Client) mapError(err error) error {
	repo := c.Repository()

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return cerrors.RateLimited(repo, rateErr.Rate.Reset.Format(time.RFC1123))
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return cerrors.RateLimited(repo, "")
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) {
		switch errResp.Response.StatusCode {
		case http.StatusUnauthorized:
			return cerrors.AuthenticationFailed(repo)
		case http.StatusNotFound:
			return cerrors.RepositoryNotFound(repo)
		case http.StatusForbidden, http.StatusTooManyRequests:
			return cerrors.RateLimited(repo, "")
		default:
			return cerrors.WrapWithMessage(err, cerrors.Runtime,
				"GitHub API request failed",
				"Check https://www.githubstatus.com for outages",
			)
		}
	}

	return cerrors.FetchFailed(repo, err)
}

// isEmptyRepo reports whether the error is the API's 409 response for a
// repository that has no commits yet.
func isEmptyRepo(err error) bool {
	var errResp *github.ErrorResponse
	return errors.As(err, &errResp) && errResp.Response.StatusCode == http.StatusConflict
}
