package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/just-nibble/github-link/pkg/errcodes"
)

const (
	baseURL        = "https://api.github.com"
	acceptHeader   = "application/vnd.github.v3+json"
	userAgent      = "github-link"
	defaultPerPage = 30
)

// GitHubClient is a simple client for interacting with GitHub's API
type GitHubClient struct {
	HTTPClient *http.Client
}

// NewGitHubClient creates a new instance of GitHubClient with a timeout
func NewGitHubClient() *GitHubClient {
	return &GitHubClient{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// User represents the JSON structure of a GitHub user
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// Repository represents the JSON structure of a GitHub repository
type Repository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	URL         string `json:"html_url"`
	Private     bool   `json:"private"`
	Language    string `json:"language"`
	Description string `json:"description"`
	Owner       struct {
		Login string `json:"login"`
	} `json:"owner"`
	StarsCount int       `json:"stargazers_count"`
	ForksCount int       `json:"forks_count"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Label represents the JSON structure of a GitHub issue label
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Issue represents the JSON structure of a GitHub issue. The issues
// endpoint also returns pull requests; those carry a non-nil PullRequest
// reference and are dropped by ListIssues.
type Issue struct {
	ID          int64     `json:"id"`
	Number      int       `json:"number"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	State       string    `json:"state"`
	Labels      []Label   `json:"labels"`
	User        User      `json:"user"`
	Assignees   []User    `json:"assignees"`
	Comments    int       `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
	PullRequest *struct {
		URL string `json:"url"`
	} `json:"pull_request,omitempty"`
}

// Comment represents the JSON structure of a GitHub issue comment
type Comment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *GitHubClient) newRequest(ctx context.Context, method, url, token string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

// GetAuthenticatedUser fetches the GitHub user the access token belongs to
func (c *GitHubClient) GetAuthenticatedUser(ctx context.Context, token string) (*User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, baseURL+"/user", token)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &errcodes.ProtocolError{Status: resp.StatusCode, Reason: "failed to fetch user"}
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, &errcodes.ProtocolError{Reason: fmt.Sprintf("failed to decode user response: %v", err)}
	}

	return &user, nil
}

// ValidateToken issues a lightweight authenticated probe against the
// current-user endpoint. It reports true only on a success status; any
// network failure or non-success status yields false. It never returns an
// error, so callers can probe speculatively before a read.
func (c *GitHubClient) ValidateToken(ctx context.Context, token string) bool {
	req, err := c.newRequest(ctx, http.MethodGet, baseURL+"/user", token)
	if err != nil {
		return false
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// ListRepositories fetches a single page of the user's repositories,
// sorted by most recently updated
func (c *GitHubClient) ListRepositories(ctx context.Context, token string) ([]Repository, error) {
	url := fmt.Sprintf("%s/user/repos?sort=updated&per_page=%d", baseURL, defaultPerPage)
	req, err := c.newRequest(ctx, http.MethodGet, url, token)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &errcodes.ProtocolError{Status: resp.StatusCode, Reason: "failed to fetch repositories"}
	}

	var repositories []Repository
	if err := json.NewDecoder(resp.Body).Decode(&repositories); err != nil {
		return nil, &errcodes.ProtocolError{Reason: fmt.Sprintf("failed to decode repositories response: %v", err)}
	}

	return repositories, nil
}

// ListIssues fetches a repository's issues filtered server-side by state.
// Pull requests returned by the issues endpoint are dropped.
func (c *GitHubClient) ListIssues(ctx context.Context, token, owner, repo, state string) ([]Issue, error) {
	if state == "" {
		state = "all"
	}

	u := fmt.Sprintf("%s/repos/%s/%s/issues?state=%s", baseURL, owner, repo, url.QueryEscape(state))
	req, err := c.newRequest(ctx, http.MethodGet, u, token)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issues: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &errcodes.ProtocolError{Status: resp.StatusCode, Reason: "failed to fetch issues"}
	}

	var raw []Issue
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &errcodes.ProtocolError{Reason: fmt.Sprintf("failed to decode issues response: %v", err)}
	}

	issues := make([]Issue, 0, len(raw))
	for _, issue := range raw {
		if issue.PullRequest != nil {
			continue
		}
		issues = append(issues, issue)
	}

	return issues, nil
}

// GetIssue fetches a single issue by number
func (c *GitHubClient) GetIssue(ctx context.Context, token, owner, repo string, number int) (*Issue, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d", baseURL, owner, repo, number)
	req, err := c.newRequest(ctx, http.MethodGet, url, token)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issue: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &errcodes.ProtocolError{Status: resp.StatusCode, Reason: "failed to fetch issue"}
	}

	var issue Issue
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return nil, &errcodes.ProtocolError{Reason: fmt.Sprintf("failed to decode issue response: %v", err)}
	}

	return &issue, nil
}

// ListIssueComments fetches a single page of comments for an issue
func (c *GitHubClient) ListIssueComments(ctx context.Context, token, owner, repo string, number int) ([]Comment, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d/comments", baseURL, owner, repo, number)
	req, err := c.newRequest(ctx, http.MethodGet, url, token)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &errcodes.ProtocolError{Status: resp.StatusCode, Reason: "failed to fetch comments"}
	}

	var comments []Comment
	if err := json.NewDecoder(resp.Body).Decode(&comments); err != nil {
		return nil, &errcodes.ProtocolError{Reason: fmt.Sprintf("failed to decode comments response: %v", err)}
	}

	return comments, nil
}
