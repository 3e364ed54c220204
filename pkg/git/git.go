// Package git wraps the local repository: remote inspection, platform
// detection, and the base-commit checks a merge configuration can require.
package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caretaking/auto-merge/internal/urlutil"
	"github.com/caretaking/auto-merge/pkg/config"
	"github.com/go-git/go-git/v5"
	"github.com/sgaunet/bullets"
)

// repoPathComponents is the number of path components identifying a
// repository on the supported forges ("owner/name").
const repoPathComponents = 2

// Platform identifies the forge hosting the repository.
type Platform string

// Supported forges.
const (
	PlatformGitLab Platform = "gitlab"
	PlatformGitHub Platform = "github"
)

var (
	errNoRemoteURL         = errors.New("remote has no URL configured")
	errUnknownPlatform     = errors.New("could not detect platform from remote URL")
	errUnparsableRemoteURL = errors.New("could not extract repository path from remote URL")
	errMissingRepository   = errors.New("repository is not configured")
)

// Repository wraps a local git repository.
type Repository struct {
	repo *git.Repository
	log  *bullets.Logger
}

// OpenRepository opens the repository at path.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return &Repository{repo: repo}, nil
}

// SetLogger attaches a logger used for debug output.
func (r *Repository) SetLogger(log *bullets.Logger) {
	r.log = log
}

// GetRemoteURL returns the first URL of the named remote.
func (r *Repository) GetRemoteURL(name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %q: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s", errNoRemoteURL, name)
	}
	return urls[0], nil
}

// DetectPlatform determines the forge from the origin remote URL.
func (r *Repository) DetectPlatform() (Platform, error) {
	url, err := r.GetRemoteURL("origin")
	if err != nil {
		return "", err
	}

	switch {
	case strings.Contains(url, "github.com"):
		return PlatformGitHub, nil
	case strings.Contains(url, "gitlab"):
		return PlatformGitLab, nil
	default:
		return "", fmt.Errorf("%w: %s", errUnknownPlatform, url)
	}
}

// RemoteRepoPath returns the "owner/name" path of the named remote.
func (r *Repository) RemoteRepoPath(name string) (string, error) {
	url, err := r.GetRemoteURL(name)
	if err != nil {
		return "", err
	}
	url = strings.TrimSuffix(url, ".git")

	path := urlutil.ExtractPathComponents(url, repoPathComponents)
	if path == "" {
		return "", fmt.Errorf("%w: %s", errUnparsableRemoteURL, url)
	}
	return path, nil
}

// UpstreamURL builds the clone URL of the configured upstream repository,
// honoring the use-ssh setting.
func UpstreamURL(p Platform, repo *config.Repository) (string, error) {
	if repo == nil {
		return "", errMissingRepository
	}

	host := "github.com"
	if p == PlatformGitLab {
		host = "gitlab.com"
	}

	if repo.UseSSH {
		return fmt.Sprintf("git@%s:%s/%s.git", host, repo.User, repo.Name), nil
	}
	return fmt.Sprintf("https://%s/%s/%s.git", host, repo.User, repo.Name), nil
}
