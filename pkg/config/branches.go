package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// targetPlaceholder is substituted with the pull request's nominal target
// branch in per-target branch templates.
const targetPlaceholder = "${target}"

// BranchSpec describes the destination branches of a target label. It is
// either a fixed ordered list, or a function of the pull request's nominal
// target branch. The resolver dispatches on the variant rather than on
// runtime callable detection.
//
// In YAML, a sequence of strings is a fixed list, and a mapping of the form
//
//	per-target: ["${target}", "${target}-lts"]
//
// is a derived spec that expands the templates against the nominal target
// branch. Go callers can supply arbitrary functions via [DerivedBranches].
type BranchSpec struct {
	fixed []string
	fn    func(targetBranch string) ([]string, error)
}

// FixedBranches returns a spec that always resolves to the given list.
// The list is returned as-is: order preserved, duplicates kept, empty allowed.
func FixedBranches(branches ...string) *BranchSpec {
	return &BranchSpec{fixed: branches}
}

// DerivedBranches returns a spec computed from the pull request's nominal
// target branch. The function must be pure; its error, if any, is propagated
// by the resolver.
func DerivedBranches(fn func(targetBranch string) ([]string, error)) *BranchSpec {
	return &BranchSpec{fn: fn}
}

// Resolve returns the destination branches for the given nominal target branch.
func (b *BranchSpec) Resolve(targetBranch string) ([]string, error) {
	if b.fn != nil {
		branches, err := b.fn(targetBranch)
		if err != nil {
			return nil, fmt.Errorf("branch function failed for target %q: %w", targetBranch, err)
		}
		return branches, nil
	}
	return b.fixed, nil
}

// IsDerived reports whether the spec is a function of the target branch.
func (b *BranchSpec) IsDerived() bool {
	return b.fn != nil
}

// branchSpecYAML is the mapping form of a derived spec in YAML.
type branchSpecYAML struct {
	PerTarget []string `yaml:"per-target"`
}

// UnmarshalYAML decodes either a sequence (fixed) or a per-target mapping (derived).
func (b *BranchSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var branches []string
		if err := value.Decode(&branches); err != nil {
			return fmt.Errorf("branch list must be a sequence of strings: %w", err)
		}
		b.fixed = branches
		return nil

	case yaml.MappingNode:
		var spec branchSpecYAML
		if err := value.Decode(&spec); err != nil {
			return fmt.Errorf("invalid branch spec: %w", err)
		}
		if spec.PerTarget == nil {
			return fmt.Errorf("branch spec mapping must set `per-target`")
		}
		templates := spec.PerTarget
		b.fn = func(targetBranch string) ([]string, error) {
			branches := make([]string, len(templates))
			for i, tmpl := range templates {
				branches[i] = strings.ReplaceAll(tmpl, targetPlaceholder, targetBranch)
			}
			return branches, nil
		}
		return nil

	default:
		return fmt.Errorf("branches must be a sequence or a per-target mapping")
	}
}
