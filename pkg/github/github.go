// Package github provides GitHub API client operations.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/caretaking/auto-merge/internal/security"
	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/bullets"
	"golang.org/x/oauth2"
)

var (
	errTokenRequired = errors.New("GITHUB_TOKEN environment variable is required")
	errPRNotOpen     = errors.New("pull request is not open")

	// ErrNotFound is returned when no pull request exists for the number.
	ErrNotFound = errors.New("pull request not found")
)

// Client represents a GitHub API client wrapper.
type Client struct {
	client *github.Client
	owner  string
	repo   string
	log    *bullets.Logger
}

// PullRequest carries the pull request fields the merge flow needs.
type PullRequest struct {
	Number       int
	Title        string
	Labels       []string
	TargetBranch string
	HeadSHA      string
	WebURL       string
}

// NewClient creates a new GitHub client authenticated with GITHUB_TOKEN.
func NewClient() (*Client, error) {
	token := security.NewSecureToken(os.Getenv("GITHUB_TOKEN"))
	if token.IsEmpty() {
		return nil, errTokenRequired
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token.Value()})
	tc := oauth2.NewClient(context.Background(), ts)

	return &Client{client: github.NewClient(tc)}, nil
}

// SetLogger attaches a logger used for debug output.
func (c *Client) SetLogger(log *bullets.Logger) {
	c.log = log
}

// SetRepository selects the repository all further calls operate on and
// validates that it exists.
func (c *Client) SetRepository(owner, repo string) error {
	c.owner = owner
	c.repo = repo

	c.debug(fmt.Sprintf("Setting GitHub repository: %s/%s", owner, repo))
	_, _, err := c.client.Repositories.Get(c.ctx(), owner, repo)
	if err != nil {
		return fmt.Errorf("failed to get repository information: %s", security.SanitizeError(err))
	}
	return nil
}

// GetPullRequest fetches an open pull request by number, including its labels
// and the nominal target branch chosen in the GitHub UI.
func (c *Client) GetPullRequest(number int) (*PullRequest, error) {
	c.debug(fmt.Sprintf("Fetching pull request #%d", number))
	pr, _, err := c.client.PullRequests.Get(c.ctx(), c.owner, c.repo, number)
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: #%d", ErrNotFound, number)
		}
		return nil, fmt.Errorf("failed to get pull request #%d: %s", number, security.SanitizeError(err))
	}

	if pr.GetState() != "open" {
		return nil, fmt.Errorf("%w: #%d is %s", errPRNotOpen, number, pr.GetState())
	}

	labels := make([]string, 0, len(pr.Labels))
	for _, label := range pr.Labels {
		labels = append(labels, label.GetName())
	}

	return &PullRequest{
		Number:       pr.GetNumber(),
		Title:        pr.GetTitle(),
		Labels:       labels,
		TargetBranch: pr.GetBase().GetRef(),
		HeadSHA:      pr.GetHead().GetSHA(),
		WebURL:       pr.GetHTMLURL(),
	}, nil
}

// MergePullRequest merges a pull request through the GitHub API using the
// given method ("merge", "squash" or "rebase"). commitTitle overrides the
// merge commit title when non-empty, which is how commit message fixups are
// applied.
func (c *Client) MergePullRequest(number int, method, commitTitle string) error {
	c.debug(fmt.Sprintf("Merging pull request #%d with method %s", number, method))
	opts := &github.PullRequestOptions{
		MergeMethod: method,
		CommitTitle: commitTitle,
	}

	result, _, err := c.client.PullRequests.Merge(c.ctx(), c.owner, c.repo, number, "", opts)
	if err != nil {
		return fmt.Errorf("failed to merge pull request #%d: %s", number, security.SanitizeError(err))
	}
	if !result.GetMerged() {
		return fmt.Errorf("pull request #%d was not merged: %s", number, result.GetMessage())
	}

	c.debug(fmt.Sprintf("Pull request #%d merged: %s", number, result.GetSHA()))
	return nil
}

func (c *Client) ctx() context.Context {
	return context.Background()
}

func (c *Client) debug(msg string) {
	if c.log != nil {
		c.log.Debug(msg)
	}
}
