package config_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/caretaking/auto-merge/pkg/config"
	"gopkg.in/yaml.v3"
)

func TestLabelPattern_Matches(t *testing.T) {
	tests := []struct {
		name    string
		pattern *config.LabelPattern
		label   string
		want    bool
	}{
		{"exact match", config.Exact("target: major"), "target: major", true},
		{"exact is not a prefix match", config.Exact("target:"), "target: major", false},
		{"exact mismatch", config.Exact("target: major"), "target: minor", false},
		{"exact is case sensitive", config.Exact("merge-ready"), "Merge-Ready", false},
		{"regex match", config.Regex(regexp.MustCompile(`^target:`)), "target: minor", true},
		{"regex mismatch", config.Regex(regexp.MustCompile(`^target:`)), "cla: yes", false},
		{"regex is unanchored by default", config.Regex(regexp.MustCompile(`ready`)), "merge-ready", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pattern.Matches(tt.label); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestLabelPattern_MatchesAny(t *testing.T) {
	labels := []string{"cla: yes", "merge-ready", "target: minor"}

	if !config.Exact("merge-ready").MatchesAny(labels) {
		t.Error("MatchesAny() = false, want true for attached label")
	}
	if config.Exact("target: major").MatchesAny(labels) {
		t.Error("MatchesAny() = true, want false for absent label")
	}
	if config.Exact("x").MatchesAny(nil) {
		t.Error("MatchesAny(nil) = true, want false")
	}
}

func TestLabelPattern_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name       string
		yamlDoc    string
		matches    []string
		notMatches []string
	}{
		{
			name:       "plain scalar is exact",
			yamlDoc:    `"target: major"`,
			matches:    []string{"target: major"},
			notMatches: []string{"target: majority"},
		},
		{
			name:       "slash delimited scalar is regex",
			yamlDoc:    `"/^target: .+$/"`,
			matches:    []string{"target: major", "target: lts"},
			notMatches: []string{"cla: yes"},
		},
		{
			name:       "single slash is exact",
			yamlDoc:    `"/"`,
			matches:    []string{"/"},
			notMatches: []string{"//"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p config.LabelPattern
			if err := yaml.Unmarshal([]byte(tt.yamlDoc), &p); err != nil {
				t.Fatalf("Unmarshal(%q) error: %v", tt.yamlDoc, err)
			}
			for _, label := range tt.matches {
				if !p.Matches(label) {
					t.Errorf("Matches(%q) = false, want true", label)
				}
			}
			for _, label := range tt.notMatches {
				if p.Matches(label) {
					t.Errorf("Matches(%q) = true, want false", label)
				}
			}
		})
	}
}

func TestLabelPattern_UnmarshalYAML_InvalidRegex(t *testing.T) {
	var p config.LabelPattern
	if err := yaml.Unmarshal([]byte(`"/target: [/"`), &p); err == nil {
		t.Fatal("Unmarshal() = nil error, want invalid regex error")
	}
}

func TestLabelPattern_String(t *testing.T) {
	if got := config.Exact("merge-ready").String(); got != "merge-ready" {
		t.Errorf("String() = %q, want merge-ready", got)
	}
	if got := config.Regex(regexp.MustCompile(`^target:`)).String(); got != "/^target:/" {
		t.Errorf("String() = %q, want /^target:/", got)
	}
}

func TestLabelPattern_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(config.Regex(regexp.MustCompile(`^target:`)))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "/^target:/" {
		t.Errorf("Marshal() = %q, want /^target:/", got)
	}

	// Documented caveat: exact text that is itself slash-delimited comes back
	// as a regex pattern.
	out, err = yaml.Marshal(config.Exact("/x/"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var p config.LabelPattern
	if err := yaml.Unmarshal(out, &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got := p.String(); got != "/x/" {
		t.Errorf("round-tripped String() = %q, want /x/", got)
	}
	if !p.Matches("x") {
		t.Error("round-tripped pattern no longer matches exact text, want regex match on x")
	}
}
