package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrBaseCommitMissing is returned when a destination branch does not contain
// its required base commit.
var ErrBaseCommitMissing = errors.New("branch does not contain required base commit")

// VerifyBaseCommits checks every resolved destination branch against the
// required-base-commits mapping. A branch without an entry carries no
// constraint. Branch heads are looked up via the origin remote-tracking refs
// first, then local branch refs.
func (r *Repository) VerifyBaseCommits(required map[string]string, branches []string) error {
	for _, branch := range branches {
		sha, ok := required[branch]
		if !ok {
			continue
		}
		if err := r.verifyBaseCommit(branch, sha); err != nil {
			return err
		}
		if r.log != nil {
			r.log.Debug(fmt.Sprintf("Branch %s contains required base commit %s", branch, sha))
		}
	}
	return nil
}

func (r *Repository) verifyBaseCommit(branch, sha string) error {
	head, err := r.branchHead(branch)
	if err != nil {
		return err
	}

	base, err := r.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return fmt.Errorf("required base commit %s for branch %s not found locally: %w", sha, branch, err)
	}

	ok, err := base.IsAncestor(head)
	if err != nil {
		return fmt.Errorf("failed to walk history of branch %s: %w", branch, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s requires %s", ErrBaseCommitMissing, branch, sha)
	}
	return nil
}

// branchHead resolves the head commit of a branch, preferring the origin
// remote-tracking ref over the local one.
func (r *Repository) branchHead(branch string) (*object.Commit, error) {
	for _, ref := range []plumbing.ReferenceName{
		plumbing.NewRemoteReferenceName("origin", branch),
		plumbing.NewBranchReferenceName(branch),
	} {
		resolved, err := r.repo.Reference(ref, true)
		if err != nil {
			continue
		}
		commit, err := r.repo.CommitObject(resolved.Hash())
		if err != nil {
			return nil, fmt.Errorf("failed to read head of branch %s: %w", branch, err)
		}
		return commit, nil
	}
	return nil, fmt.Errorf("branch %s not found locally or on origin", branch)
}
