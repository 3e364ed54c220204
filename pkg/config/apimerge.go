package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MergeMethod selects how the forge API combines commits when merging.
type MergeMethod string

// Supported forge-API merge methods.
const (
	MergeMethodMerge  MergeMethod = "merge"
	MergeMethodSquash MergeMethod = "squash"
	MergeMethodRebase MergeMethod = "rebase"
)

// APIMergeStrategy configures merging through the forge API. A nil
// *APIMergeStrategy on [Config] means the choice was never made;
// Enabled=false means it was explicitly disabled. The distinction matters:
// validation rejects the former and accepts the latter.
//
// In YAML the field is either the literal false or a mapping:
//
//	github-api-merge: false
//	github-api-merge:
//	  default: squash
//	  labels:
//	    - pattern: "squash commits"
//	      method: squash
type APIMergeStrategy struct {
	Enabled bool

	// Default is the merge method used when no label override applies.
	Default MergeMethod `yaml:"default"`

	// Labels override the merge method for pull requests carrying a matching label.
	Labels []MergeMethodOverride `yaml:"labels"`
}

// MergeMethodOverride selects a merge method for pull requests whose labels
// match the pattern.
type MergeMethodOverride struct {
	Pattern *LabelPattern `yaml:"pattern"`
	Method  MergeMethod   `yaml:"method"`
}

// Method returns the merge method for a pull request with the given labels.
func (s *APIMergeStrategy) Method(prLabels []string) MergeMethod {
	for _, o := range s.Labels {
		if o.Pattern != nil && o.Pattern.MatchesAny(prLabels) {
			return o.Method
		}
	}
	if s.Default != "" {
		return s.Default
	}
	return MergeMethodMerge
}

// UnmarshalYAML decodes either the literal false or a strategy mapping.
func (s *APIMergeStrategy) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return fmt.Errorf("github-api-merge must be false or a strategy mapping: %w", err)
		}
		if enabled {
			return fmt.Errorf("github-api-merge cannot be true; use a strategy mapping to enable it")
		}
		s.Enabled = false
		return nil
	}

	type strategyYAML APIMergeStrategy
	var raw strategyYAML
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("invalid github-api-merge strategy: %w", err)
	}
	*s = APIMergeStrategy(raw)
	s.Enabled = true
	return nil
}

// MarshalYAML encodes the strategy back into its configuration form.
func (s *APIMergeStrategy) MarshalYAML() (any, error) {
	if !s.Enabled {
		return false, nil
	}
	type strategyYAML APIMergeStrategy
	return strategyYAML(*s), nil
}
