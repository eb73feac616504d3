package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/creativetech/repodir/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// RetryPolicy bounds retries on endpoints that respond 202 while github is
// still computing data. sleep is injectable for tests.
type RetryPolicy struct {
	Attempts int
	Wait     time.Duration

	sleep func(time.Duration)
}

// DefaultRetryPolicy waits 3 seconds and retries exactly once.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts: 2,
		Wait:     3 * time.Second,
		sleep:    time.Sleep,
	}
}

// Client returns details about github repositories.
// This struct is an adapter for app.GithubClient.
//go:generate mockgen -destination ../../app/mock/githubcli.go -package mock github.com/creativetech/repodir/internal/app GithubClient
type Client struct {
	doer         HTTPDoer
	address      string
	authToken    string
	pendingRetry RetryPolicy

	repoResponseMaxSize  int
	statsResponseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional.
func NewClient(doer HTTPDoer, address string, authToken string) *Client {
	c := Client{
		doer:         doer,
		address:      address,
		authToken:    authToken,
		pendingRetry: DefaultRetryPolicy(),

		repoResponseMaxSize:  1024 * 1024,
		statsResponseMaxSize: 1024 * 1024 * 10,
	}

	return &c
}

// RepoBySlug returns repository metadata by its owner/name slug.
func (c *Client) RepoBySlug(ctx context.Context, slug string) (app.RepoMetadata, error) {
	if slug == "" {
		return app.RepoMetadata{}, app.InvalidRequestError("slug cannot be empty")
	}

	u, err := url.Parse(c.address + "/repos/" + slug)
	if err != nil {
		return app.RepoMetadata{}, fmt.Errorf("invalid url: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return app.RepoMetadata{}, fmt.Errorf("creating http request: %w", err)
	}

	body, code, err := c.makeRequest(ctx, httpReq, c.repoResponseMaxSize)
	if err != nil {
		if code == http.StatusNotFound {
			return app.RepoMetadata{}, app.NotFoundError(fmt.Sprintf("repository %q does not exist", slug))
		}
		return app.RepoMetadata{}, fmt.Errorf("making http request: %w", err)
	}

	var resp repoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.RepoMetadata{}, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToMetadata(), nil
}

// CommitActivity returns the weekly commit series for the repository,
// ordered oldest to newest.
//
// Github returns status 202 when it's still computing stats. The client
// waits and retries within the retry policy's budget, then gives up with
// app.PendingStatsError.
func (c *Client) CommitActivity(ctx context.Context, slug string) ([]app.CommitWeek, error) {
	if slug == "" {
		return nil, app.InvalidRequestError("slug cannot be empty")
	}

	u, err := url.Parse(c.address + "/repos/" + slug + "/stats/commit_activity")
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	var body []byte
	for attempt := 1; ; attempt++ {
		b, code, err := c.makeRequest(ctx, httpReq, c.statsResponseMaxSize)
		if err != nil {
			return nil, fmt.Errorf("making http request: %w", err)
		}
		if code == http.StatusAccepted {
			if attempt < c.pendingRetry.Attempts {
				c.pendingRetry.sleep(c.pendingRetry.Wait)
				continue
			}
			return nil, app.PendingStatsError(fmt.Sprintf("commit activity for %q still computing after %d attempts", slug, attempt))
		}
		body = b
		break
	}

	var resp statsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToWeeks(), nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) ([]byte, int, error) {
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "creative-tech-directory")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, 0, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.StatusCode, nil
	}
	// Anything outside 2xx is an error. 202 is 2xx and handled by the caller.
	if resp.StatusCode/100 != 2 {
		if c.checkRateLimitExceeded(&resp.Header) {
			return nil, resp.StatusCode, errors.New("rate limit exceeded")
		}
		return nil, resp.StatusCode, fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading http response body: %w", err)
	}

	return b, resp.StatusCode, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}
