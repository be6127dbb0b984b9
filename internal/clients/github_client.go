package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/spacesedan/prsentiment/internal/models"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("authentication failed")
)

// GitHubClient reads review comments from and posts report comments to a
// pull request.
type GitHubClient struct {
	apiURL  string
	httpCli *http.Client
	backoff time.Duration
}

// NewGitHubClient authenticates every request with token.
func NewGitHubClient(ctx context.Context, token, apiURL string) (*GitHubClient, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: GITHUB_TOKEN is not set", ErrUnauthorized)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: GITHUB_TIMEOUT})
	httpCli := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	httpCli.Timeout = GITHUB_TIMEOUT

	return &GitHubClient{
		apiURL:  strings.TrimRight(apiURL, "/"),
		httpCli: httpCli,
		backoff: INITIAL_BACKOFF,
	}, nil
}

// SplitRepository splits "owner/repo".
func SplitRepository(fullName string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(fullName), "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("invalid repository %q, want owner/repo", fullName)
	}
	return owner, repo, nil
}

// ListReviewComments returns every review comment on the pull request in the
// order GitHub returns them.
func (c *GitHubClient) ListReviewComments(ctx context.Context, repository string, prNumber int) ([]models.Comment, error) {
	owner, repo, err := SplitRepository(repository)
	if err != nil {
		return nil, err
	}

	var comments []models.Comment
	for page := 1; page <= GITHUB_MAX_PAGES; page++ {
		url := fmt.Sprintf("%s/repos/%s/%s/pulls/%d/comments?per_page=%d&page=%d",
			c.apiURL, owner, repo, prNumber, GITHUB_PER_PAGE, page)

		body, err := c.get(ctx, url)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("PR #%d in %s: %w", prNumber, repository, err)
			}
			return nil, fmt.Errorf("fetching review comments page %d: %w", page, err)
		}

		var batch []models.GitHubReviewComment
		if err := json.Unmarshal(body, &batch); err != nil {
			return nil, fmt.Errorf("parsing review comments page %d: %w", page, err)
		}
		for _, rc := range batch {
			comments = append(comments, rc.ToComment())
		}

		if len(batch) < GITHUB_PER_PAGE {
			break
		}
	}

	slog.Info("[GitHubClient] Fetched review comments",
		slog.String("repository", repository),
		slog.Int("pr", prNumber),
		slog.Int("count", len(comments)))

	return comments, nil
}

// PostIssueComment posts body as a top-level comment on the pull request.
func (c *GitHubClient) PostIssueComment(ctx context.Context, repository string, prNumber int, body string) (models.GitHubIssueCommentResponse, error) {
	var out models.GitHubIssueCommentResponse

	owner, repo, err := SplitRepository(repository)
	if err != nil {
		return out, err
	}

	payload, err := json.Marshal(models.GitHubIssueCommentRequest{Body: body})
	if err != nil {
		return out, fmt.Errorf("marshaling comment: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d/comments", c.apiURL, owner, repo, prNumber)
	resp, err := doWithRetry(ctx, c.httpCli, c.backoff, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return out, fmt.Errorf("posting comment: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		return out, statusError(resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, &out); err != nil {
		return out, fmt.Errorf("parsing response: %w", err)
	}

	slog.Info("[GitHubClient] Comment posted successfully",
		slog.String("repository", repository),
		slog.Int("pr", prNumber),
		slog.String("url", out.HTMLURL))

	return out, nil
}

// Ping checks the token against the rate limit endpoint, which does not count
// against the quota.
func (c *GitHubClient) Ping(ctx context.Context) error {
	_, err := c.get(ctx, c.apiURL+"/rate_limit")
	return err
}

func (c *GitHubClient) get(ctx context.Context, url string) ([]byte, error) {
	resp, err := doWithRetry(ctx, c.httpCli, c.backoff, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode, body)
	}
	return body, nil
}

func (c *GitHubClient) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", USER_AGENT)
}

func statusError(status int, body []byte) error {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, string(body))
	default:
		return fmt.Errorf("GitHub API error (status %d): %s", status, string(body))
	}
}
