package platform

import (
	"errors"
	"fmt"

	"github.com/caretaking/auto-merge/pkg/config"
	ghclient "github.com/caretaking/auto-merge/pkg/github"
	"github.com/sgaunet/bullets"
)

// GitHubAdapter wraps a GitHub client to implement the [Provider] interface.
type GitHubAdapter struct {
	client *ghclient.Client
	log    *bullets.Logger
}

// NewGitHubAdapter creates a new GitHub adapter.
func NewGitHubAdapter(client *ghclient.Client, log *bullets.Logger) *GitHubAdapter {
	return &GitHubAdapter{client: client, log: log}
}

// Initialize binds the adapter to the configured upstream repository.
func (a *GitHubAdapter) Initialize(repo *config.Repository) error {
	if err := a.client.SetRepository(repo.User, repo.Name); err != nil {
		return fmt.Errorf("failed to set GitHub repository: %w", err)
	}
	return nil
}

// GetPullRequest fetches an open pull request, converted to the
// platform-agnostic format.
func (a *GitHubAdapter) GetPullRequest(number int) (*PullRequest, error) {
	pr, err := a.client.GetPullRequest(number)
	if err != nil {
		if errors.Is(err, ghclient.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to get pull request: %w", err)
	}

	return &PullRequest{
		Number:       pr.Number,
		Title:        pr.Title,
		Labels:       pr.Labels,
		TargetBranch: pr.TargetBranch,
		HeadSHA:      pr.HeadSHA,
		WebURL:       pr.WebURL,
	}, nil
}

// Merge merges a pull request through the GitHub API.
func (a *GitHubAdapter) Merge(params MergeParams) error {
	a.log.Debug(fmt.Sprintf("Merging GitHub pull request #%d (%s)", params.Number, params.Method))
	if err := a.client.MergePullRequest(params.Number, string(params.Method), params.CommitTitle); err != nil {
		return fmt.Errorf("failed to merge pull request: %w", err)
	}
	return nil
}

// PlatformName returns "GitHub".
func (a *GitHubAdapter) PlatformName() string {
	return "GitHub"
}
