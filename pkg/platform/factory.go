package platform

import (
	"errors"
	"fmt"

	"github.com/caretaking/auto-merge/pkg/git"
	ghclient "github.com/caretaking/auto-merge/pkg/github"
	glclient "github.com/caretaking/auto-merge/pkg/gitlab"
	"github.com/sgaunet/bullets"
)

// errUnsupportedPlatform is returned when the detected platform is not supported.
var errUnsupportedPlatform = errors.New("unsupported platform")

// NewProvider creates the appropriate Provider implementation based on the detected platform.
//
//nolint:ireturn // Factory function must return interface to enable platform abstraction.
func NewProvider(p git.Platform, logger *bullets.Logger) (Provider, error) {
	switch p {
	case git.PlatformGitLab:
		client, err := glclient.NewClient()
		if err != nil {
			return nil, fmt.Errorf("failed to create GitLab client: %w", err)
		}
		client.SetLogger(logger)
		return NewGitLabAdapter(client, logger), nil

	case git.PlatformGitHub:
		client, err := ghclient.NewClient()
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub client: %w", err)
		}
		client.SetLogger(logger)
		return NewGitHubAdapter(client, logger), nil

	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedPlatform, p)
	}
}
