// Package platform provides a unified abstraction over the GitHub and GitLab
// forge APIs.
//
// The [Provider] interface covers the operations the merge flow needs:
// fetching a pull request's labels and nominal target branch, and merging it
// through the forge API. Use [NewProvider] to create the adapter for the
// detected platform:
//
//	provider, err := platform.NewProvider(git.PlatformGitHub, logger)
//	provider.Initialize(cfg.Repository)
//	pr, _ := provider.GetPullRequest(4321)
//	provider.Merge(platform.MergeParams{Number: pr.Number, Method: config.MergeMethodSquash})
package platform

import "github.com/caretaking/auto-merge/pkg/config"

// PullRequest is a platform-agnostic view of a pull/merge request.
type PullRequest struct {
	Number       int      // GitHub: PR number; GitLab: MR IID
	Title        string
	Labels       []string // label names as attached on the forge
	TargetBranch string   // nominal target branch chosen in the forge UI
	HeadSHA      string
	WebURL       string
}

// MergeParams holds parameters for merging through the forge API.
type MergeParams struct {
	Number      int
	Method      config.MergeMethod
	CommitTitle string // non-empty when a commit message fixup applies
}
