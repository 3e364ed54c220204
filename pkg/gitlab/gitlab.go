// Package gitlab provides GitLab API client operations.
package gitlab

import (
	"errors"
	"fmt"
	"os"

	"github.com/caretaking/auto-merge/internal/security"
	"github.com/sgaunet/bullets"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

var (
	errTokenRequired = errors.New("GITLAB_TOKEN environment variable is required")
	errMRNotOpen     = errors.New("merge request is not open")

	// ErrNotFound is returned when no merge request exists for the IID.
	ErrNotFound = errors.New("merge request not found")
)

// Client represents a GitLab API client wrapper.
type Client struct {
	client    *gitlab.Client
	projectID string
	log       *bullets.Logger
}

// MergeRequest carries the merge request fields the merge flow needs.
type MergeRequest struct {
	IID          int
	Title        string
	Labels       []string
	TargetBranch string
	HeadSHA      string
	WebURL       string
}

// NewClient creates a new GitLab client authenticated with GITLAB_TOKEN.
func NewClient() (*Client, error) {
	token := security.NewSecureToken(os.Getenv("GITLAB_TOKEN"))
	if token.IsEmpty() {
		return nil, errTokenRequired
	}

	client, err := gitlab.NewClient(token.Value())
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %s", security.SanitizeError(err))
	}
	return &Client{client: client}, nil
}

// SetLogger attaches a logger used for debug output.
func (c *Client) SetLogger(log *bullets.Logger) {
	c.log = log
}

// SetProject selects the project all further calls operate on and validates
// that it exists.
func (c *Client) SetProject(user, name string) error {
	path := fmt.Sprintf("%s/%s", user, name)

	c.debug(fmt.Sprintf("Setting GitLab project: %s", path))
	project, _, err := c.client.Projects.GetProject(path, nil)
	if err != nil {
		return fmt.Errorf("failed to get project information: %s", security.SanitizeError(err))
	}

	c.projectID = fmt.Sprintf("%d", project.ID)
	return nil
}

// GetMergeRequest fetches an open merge request by IID, including its labels
// and the nominal target branch chosen in the GitLab UI.
func (c *Client) GetMergeRequest(iid int) (*MergeRequest, error) {
	c.debug(fmt.Sprintf("Fetching merge request !%d", iid))
	mr, _, err := c.client.MergeRequests.GetMergeRequest(c.projectID, iid, nil)
	if err != nil {
		if errors.Is(err, gitlab.ErrNotFound) {
			return nil, fmt.Errorf("%w: !%d", ErrNotFound, iid)
		}
		return nil, fmt.Errorf("failed to get merge request !%d: %s", iid, security.SanitizeError(err))
	}

	if mr.State != "opened" {
		return nil, fmt.Errorf("%w: !%d is %s", errMRNotOpen, iid, mr.State)
	}

	return &MergeRequest{
		IID:          mr.IID,
		Title:        mr.Title,
		Labels:       mr.Labels,
		TargetBranch: mr.TargetBranch,
		HeadSHA:      mr.SHA,
		WebURL:       mr.WebURL,
	}, nil
}

// MergeMergeRequest merges a merge request through the GitLab API. squash
// collapses the source branch commits; commitTitle overrides the merge
// commit message when non-empty.
func (c *Client) MergeMergeRequest(iid int, squash bool, commitTitle string) error {
	c.debug(fmt.Sprintf("Merging merge request !%d", iid))
	opts := &gitlab.AcceptMergeRequestOptions{
		Squash: gitlab.Ptr(squash),
	}
	if commitTitle != "" {
		opts.MergeCommitMessage = gitlab.Ptr(commitTitle)
	}

	_, _, err := c.client.MergeRequests.AcceptMergeRequest(c.projectID, iid, opts)
	if err != nil {
		return fmt.Errorf("failed to merge merge request !%d: %s", iid, security.SanitizeError(err))
	}

	c.debug(fmt.Sprintf("Merge request !%d merged", iid))
	return nil
}

func (c *Client) debug(msg string) {
	if c.log != nil {
		c.log.Debug(msg)
	}
}
