// Package config models and validates the merge configuration: which target
// labels exist, which branches they resolve to, and which labels gate a merge.
package config

import "gopkg.in/yaml.v3"

// Config is the merge configuration for a repository. It is built once per
// invocation, validated with [Config.Validate], and treated as read-only
// afterwards. The only post-validation mutation is the single
// [Config.ResolveProjectRoot] call.
type Config struct {
	// ProjectRoot is the path to the repository working tree. It may be
	// relative in the raw configuration; ResolveProjectRoot makes it absolute.
	ProjectRoot string `yaml:"project-root"`

	// Repository identifies the upstream repository on the forge.
	Repository *Repository `yaml:"repository"`

	// Labels is the ordered list of target labels. Order matters: the first
	// entry whose pattern matches a pull request label wins.
	Labels []TargetLabel `yaml:"labels"`

	// RequiredBaseCommits maps a branch name to a commit SHA that must be an
	// ancestor of the branch head before merging into it. Branches without an
	// entry carry no constraint.
	RequiredBaseCommits map[string]string `yaml:"required-base-commits"`

	// ClaSignedLabel matches the label that marks a signed CLA.
	ClaSignedLabel *LabelPattern `yaml:"cla-signed-label"`

	// MergeReadyLabel matches the label that marks a pull request as ready to merge.
	MergeReadyLabel *LabelPattern `yaml:"merge-ready-label"`

	// CommitMessageFixupLabel matches the label that requests a commit message
	// rewrite before merging.
	CommitMessageFixupLabel *LabelPattern `yaml:"commit-message-fixup-label"`

	// GithubAPIMerge selects the forge-API merge strategy. nil means the
	// choice was never made, which validation rejects; an explicitly disabled
	// strategy is valid.
	GithubAPIMerge *APIMergeStrategy `yaml:"github-api-merge"`

	// labelsNotArray records that the YAML document carried a labels key
	// whose value was not a sequence. Validation reports it instead of the
	// missing-labels error; the two are mutually exclusive.
	labelsNotArray bool
}

// Repository identifies the upstream repository.
type Repository struct {
	User   string `yaml:"user"`
	Name   string `yaml:"name"`
	UseSSH bool   `yaml:"use-ssh"`
}

// TargetLabel binds a label pattern to the branches a matching pull request
// is merged into.
type TargetLabel struct {
	Pattern  *LabelPattern `yaml:"pattern"`
	Branches *BranchSpec   `yaml:"branches"`
}

// UnmarshalYAML decodes the configuration mapping. A labels key whose value
// is not a sequence is neutralized before decoding and remembered so that
// Validate can report it as a structural error rather than failing the parse.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	labelsNotArray := false
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			key, val := value.Content[i], value.Content[i+1]
			if key.Value != "labels" {
				continue
			}
			if val.Kind != yaml.SequenceNode && val.Tag != "!!null" {
				labelsNotArray = true
				*val = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}
			}
			break
		}
	}

	type rawConfig Config
	var raw rawConfig
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*c = Config(raw)
	c.labelsNotArray = labelsNotArray
	return nil
}
