// Package fixtures provides shared test data for auto-merge tests.
package fixtures

import (
	"regexp"

	"github.com/caretaking/auto-merge/pkg/config"
)

// ValidConfig returns a fully populated configuration that passes validation.
func ValidConfig() *config.Config {
	return &config.Config{
		ProjectRoot: "/work/upstream",
		Repository:  &config.Repository{User: "acme", Name: "widgets"},
		Labels: []config.TargetLabel{
			{
				Pattern:  config.Exact("target: major"),
				Branches: config.FixedBranches("main"),
			},
			{
				Pattern:  config.Regex(regexp.MustCompile(`^target:`)),
				Branches: config.FixedBranches("main", "v1"),
			},
		},
		ClaSignedLabel:          config.Exact("cla: yes"),
		MergeReadyLabel:         config.Exact("merge-ready"),
		CommitMessageFixupLabel: config.Exact("commit message fixup"),
		GithubAPIMerge:          &config.APIMergeStrategy{Enabled: false},
	}
}

// ValidConfigYAML is a configuration document that parses and validates.
const ValidConfigYAML = `
project-root: ../upstream
repository:
  user: acme
  name: widgets
labels:
  - pattern: "target: major"
    branches: [main]
  - pattern: "/target: .+/"
    branches: [main, v1]
cla-signed-label: "cla: yes"
merge-ready-label: "merge-ready"
commit-message-fixup-label: "commit message fixup"
github-api-merge: false
`

// APIMergeConfigYAML enables forge-API merging with a label override.
const APIMergeConfigYAML = `
project-root: .
repository:
  user: acme
  name: widgets
  use-ssh: true
labels:
  - pattern: "target: lts"
    branches:
      per-target: ["${target}", "${target}-lts"]
required-base-commits:
  main: 1c0eb3c6532a9cd1bcbb9d5b0f66ad5d3a1f1e7a
cla-signed-label: "cla: yes"
merge-ready-label: "/^(merge-ready|PR action:[ ]+merge)$/"
github-api-merge:
  default: squash
  labels:
    - pattern: "preserve commits"
      method: merge
`
