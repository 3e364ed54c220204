package config

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// LabelPattern matches pull request label names. It is either an exact string
// compared by equality, or a regular expression. The two forms are kept as a
// tagged variant so matching semantics stay explicit; no runtime type
// inspection happens at match time.
//
// In YAML, a plain scalar is an exact pattern and a slash-delimited scalar
// (e.g. "/target: .+/") is a regular expression.
type LabelPattern struct {
	exact string
	regex *regexp.Regexp
}

// Exact returns a pattern that matches s by string equality.
func Exact(s string) *LabelPattern {
	return &LabelPattern{exact: s}
}

// Regex returns a pattern that matches any label the expression matches.
func Regex(re *regexp.Regexp) *LabelPattern {
	return &LabelPattern{regex: re}
}

// IsEmpty reports whether the pattern holds neither an exact string nor a
// regular expression. Validation treats an empty pattern as not configured.
func (p *LabelPattern) IsEmpty() bool {
	return p == nil || (p.regex == nil && p.exact == "")
}

// Matches reports whether the pattern matches the given label name.
func (p *LabelPattern) Matches(name string) bool {
	if p.regex != nil {
		return p.regex.MatchString(name)
	}
	return p.exact == name
}

// MatchesAny reports whether the pattern matches at least one of the names.
func (p *LabelPattern) MatchesAny(names []string) bool {
	for _, name := range names {
		if p.Matches(name) {
			return true
		}
	}
	return false
}

// String returns the pattern in its configuration form.
func (p *LabelPattern) String() string {
	if p.regex != nil {
		return "/" + p.regex.String() + "/"
	}
	return p.exact
}

// UnmarshalYAML decodes a scalar into an exact or regex pattern.
func (p *LabelPattern) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("label pattern must be a string: %w", err)
	}

	if len(s) > 1 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") {
		re, err := regexp.Compile(s[1 : len(s)-1])
		if err != nil {
			return fmt.Errorf("invalid label pattern %q: %w", s, err)
		}
		p.regex = re
		return nil
	}

	p.exact = s
	return nil
}

// MarshalYAML encodes the pattern back into its scalar form. The encoding is
// not round-trip safe for an exact pattern whose text is itself
// slash-delimited (e.g. "/x/"): decoding the emitted scalar yields a regex
// pattern instead.
func (p *LabelPattern) MarshalYAML() (any, error) {
	return p.String(), nil
}
