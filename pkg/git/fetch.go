package git

import (
	"errors"
	"fmt"

	"github.com/caretaking/auto-merge/pkg/config"
	"github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// FetchUpstream updates the origin remote-tracking refs for the given
// branches from the configured upstream repository, so base-commit checks run
// against fresh heads. Uses SSH authentication when the repository sets
// use-ssh; HTTPS fetches of public repositories need no credentials.
func (r *Repository) FetchUpstream(p Platform, repoCfg *config.Repository, branches []string) error {
	url, err := UpstreamURL(p, repoCfg)
	if err != nil {
		return err
	}

	var auth transport.AuthMethod
	if repoCfg.UseSSH {
		auth, err = SSHAuth()
		if err != nil {
			return fmt.Errorf("failed to set up SSH authentication: %w", err)
		}
	}

	refspecs := make([]gitcfg.RefSpec, 0, len(branches))
	for _, branch := range branches {
		refspecs = append(refspecs,
			gitcfg.RefSpec(fmt.Sprintf("+refs/heads/%s:refs/remotes/origin/%s", branch, branch)))
	}

	remote, err := r.repo.CreateRemoteAnonymous(&gitcfg.RemoteConfig{
		Name: "anonymous",
		URLs: []string{url},
	})
	if err != nil {
		return fmt.Errorf("failed to create upstream remote: %w", err)
	}

	if r.log != nil {
		r.log.Debug(fmt.Sprintf("Fetching %d branch(es) from %s", len(branches), url))
	}
	err = remote.Fetch(&git.FetchOptions{RefSpecs: refspecs, Auth: auth})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to fetch upstream: %w", err)
	}
	return nil
}
