package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/ariel-frischer/changelogup/internal/errors"
)

const commitsPath = "/repos/acme/widgets/commits"

// newTestClient points a client at an httptest server standing in for the API.
func newTestClient(t *testing.T, handler http.Handler, opts Options) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts.BaseURL = server.URL
	client, err := NewClient("test-token", "acme/widgets", opts)
	require.NoError(t, err)
	return client
}

func TestNewClient_InvalidRepository(t *testing.T) {
	for _, repo := range []string{"", "widgets", "acme/", "/widgets"} {
		_, err := NewClient("tok", repo, Options{})
		assert.Error(t, err, "repo %q should be rejected", repo)
	}
}

func TestFetchAll_SinglePage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, commitsPath, r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"sha":"abc123","commit":{"message":"Fix bug","author":{"name":"alice","date":"2024-01-05T12:00:00Z"}}},
			{"sha":"def456","commit":{"message":"Add feature","author":{"name":"bob","date":"2024-01-04T12:00:00Z"}}}
		]`)
	})

	client := newTestClient(t, handler, Options{})

	commits, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, commits, 2)

	assert.Equal(t, "abc123", commits[0].SHA)
	assert.Equal(t, "alice", commits[0].Author)
	assert.Equal(t, "Fix bug", commits[0].Message)
	assert.Equal(t, "2024-01-05", commits[0].Date.Format("2006-01-02"))

	assert.Equal(t, "def456", commits[1].SHA)
	assert.Equal(t, "bob", commits[1].Author)
}

func TestFetchAll_DrainsAllPages(t *testing.T) {
	var baseURL string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "", "1":
			w.Header().Set("Link", fmt.Sprintf(
				`<%s%s?page=2>; rel="next", <%s%s?page=2>; rel="last"`,
				baseURL, commitsPath, baseURL, commitsPath))
			fmt.Fprint(w, `[{"sha":"aaa111","commit":{"message":"newest","author":{"name":"alice","date":"2024-01-05T00:00:00Z"}}}]`)
		case "2":
			fmt.Fprint(w, `[{"sha":"bbb222","commit":{"message":"oldest","author":{"name":"bob","date":"2024-01-04T00:00:00Z"}}}]`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	baseURL = server.URL

	client, err := NewClient("tok", "acme/widgets", Options{BaseURL: server.URL, PerPage: 1})
	require.NoError(t, err)

	commits, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "newest", commits[0].Message)
	assert.Equal(t, "oldest", commits[1].Message)
}

func TestFetchAll_EmptyRepository(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	client := newTestClient(t, handler, Options{})

	commits, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestFetchAll_EmptyRepositoryConflict(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"message":"Git Repository is empty."}`)
	})

	client := newTestClient(t, handler, Options{})

	commits, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestFetchAll_ErrorMapping(t *testing.T) {
	tests := map[string]struct {
		status       int
		body         string
		wantCategory cerrors.ErrorCategory
	}{
		"401 maps to authentication": {
			status:       http.StatusUnauthorized,
			body:         `{"message":"Bad credentials"}`,
			wantCategory: cerrors.Authentication,
		},
		"404 maps to not found": {
			status:       http.StatusNotFound,
			body:         `{"message":"Not Found"}`,
			wantCategory: cerrors.NotFound,
		},
		"403 maps to rate limit": {
			status:       http.StatusForbidden,
			body:         `{"message":"API rate limit exceeded"}`,
			wantCategory: cerrors.RateLimit,
		},
		"429 maps to rate limit": {
			status:       http.StatusTooManyRequests,
			body:         `{"message":"too many requests"}`,
			wantCategory: cerrors.RateLimit,
		},
		"500 maps to runtime": {
			status:       http.StatusInternalServerError,
			body:         `{"message":"boom"}`,
			wantCategory: cerrors.Runtime,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			client := newTestClient(t, handler, Options{})

			_, err := client.FetchAll(context.Background())
			require.Error(t, err)

			cliErr := cerrors.AsCLIError(err)
			require.NotNil(t, cliErr, "error should be a CLIError, got %T: %v", err, err)
			assert.Equal(t, tt.wantCategory, cliErr.Category)
		})
	}
}

func TestFetchAll_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close() // nothing is listening anymore

	client, err := NewClient("tok", "acme/widgets", Options{BaseURL: baseURL})
	require.NoError(t, err)

	_, err = client.FetchAll(context.Background())
	require.Error(t, err)

	cliErr := cerrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, cerrors.Network, cliErr.Category)
}

func TestFetchAll_SchemaMismatch(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"sha":"abc123"}]`)
	})

	client := newTestClient(t, handler, Options{})

	_, err := client.FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abc123")

	cliErr := cerrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, cerrors.Runtime, cliErr.Category)
}

func TestFetchAll_MaxCommitsTruncates(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"sha":"a","commit":{"message":"one","author":{"name":"x","date":"2024-01-03T00:00:00Z"}}},
			{"sha":"b","commit":{"message":"two","author":{"name":"x","date":"2024-01-02T00:00:00Z"}}},
			{"sha":"c","commit":{"message":"three","author":{"name":"x","date":"2024-01-01T00:00:00Z"}}}
		]`)
	})

	client := newTestClient(t, handler, Options{MaxCommits: 2})

	commits, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "one", commits[0].Message)
	assert.Equal(t, "two", commits[1].Message)
}

func TestFetchAll_PageCallback(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	var pages []int
	client := newTestClient(t, handler, Options{OnPage: func(page int) {
		pages = append(pages, page)
	}})

	_, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1}, pages)
}

func TestFetchAll_BranchFilterForwarded(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "release-1.x", r.URL.Query().Get("sha"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	client := newTestClient(t, handler, Options{Branch: "release-1.x"})

	_, err := client.FetchAll(context.Background())
	require.NoError(t, err)
}
