package platform

import "github.com/caretaking/auto-merge/pkg/config"

// Provider defines the unified interface for GitHub and GitLab operations.
type Provider interface {
	// Initialize binds the provider to the configured upstream repository.
	Initialize(repo *config.Repository) error

	// GetPullRequest fetches an open pull/merge request by number.
	GetPullRequest(number int) (*PullRequest, error)

	// Merge merges a pull/merge request through the forge API.
	Merge(params MergeParams) error

	// PlatformName returns "GitHub" or "GitLab".
	PlatformName() string
}
