package platform

import (
	"errors"
	"fmt"

	"github.com/caretaking/auto-merge/pkg/config"
	glclient "github.com/caretaking/auto-merge/pkg/gitlab"
	"github.com/sgaunet/bullets"
)

// GitLabAdapter wraps a GitLab client to implement the [Provider] interface.
type GitLabAdapter struct {
	client *glclient.Client
	log    *bullets.Logger
}

// NewGitLabAdapter creates a new GitLab adapter.
func NewGitLabAdapter(client *glclient.Client, log *bullets.Logger) *GitLabAdapter {
	return &GitLabAdapter{client: client, log: log}
}

// Initialize binds the adapter to the configured upstream project.
func (a *GitLabAdapter) Initialize(repo *config.Repository) error {
	if err := a.client.SetProject(repo.User, repo.Name); err != nil {
		return fmt.Errorf("failed to set GitLab project: %w", err)
	}
	return nil
}

// GetPullRequest fetches an open merge request, converted to the
// platform-agnostic format.
func (a *GitLabAdapter) GetPullRequest(number int) (*PullRequest, error) {
	mr, err := a.client.GetMergeRequest(number)
	if err != nil {
		if errors.Is(err, glclient.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to get merge request: %w", err)
	}

	return &PullRequest{
		Number:       mr.IID,
		Title:        mr.Title,
		Labels:       mr.Labels,
		TargetBranch: mr.TargetBranch,
		HeadSHA:      mr.HeadSHA,
		WebURL:       mr.WebURL,
	}, nil
}

// Merge merges a merge request through the GitLab API. GitLab has no rebase
// merge method on accept; only squash maps to a distinct behavior.
func (a *GitLabAdapter) Merge(params MergeParams) error {
	squash := params.Method == config.MergeMethodSquash
	a.log.Debug(fmt.Sprintf("Merging GitLab merge request !%d (squash=%t)", params.Number, squash))
	if err := a.client.MergeMergeRequest(params.Number, squash, params.CommitTitle); err != nil {
		return fmt.Errorf("failed to merge merge request: %w", err)
	}
	return nil
}

// PlatformName returns "GitLab".
func (a *GitLabAdapter) PlatformName() string {
	return "GitLab"
}
