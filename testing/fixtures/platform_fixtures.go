package fixtures

import "github.com/caretaking/auto-merge/pkg/platform"

// OpenPullRequest returns a pull request carrying both gating labels and a
// target label.
func OpenPullRequest() *platform.PullRequest {
	return &platform.PullRequest{
		Number:       4321,
		Title:        "fix: handle empty payloads",
		Labels:       []string{"cla: yes", "merge-ready", "target: major"},
		TargetBranch: "main",
		HeadSHA:      "7d1f6a9c3f0e2b8d4a5c6e1f0b9a8d7c6e5f4a3b",
		WebURL:       "https://github.com/acme/widgets/pull/4321",
	}
}
