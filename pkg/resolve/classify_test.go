package resolve_test

import (
	"regexp"
	"testing"

	"github.com/caretaking/auto-merge/pkg/config"
	"github.com/caretaking/auto-merge/pkg/resolve"
)

func classifyConfig() *config.Config {
	return &config.Config{
		ClaSignedLabel:          config.Exact("cla: yes"),
		MergeReadyLabel:         config.Exact("merge-ready"),
		CommitMessageFixupLabel: config.Exact("commit message fixup"),
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		prLabels []string
		want     resolve.Classification
	}{
		{
			name:     "both gating labels present",
			prLabels: []string{"cla: yes", "merge-ready"},
			want:     resolve.Classification{ClaSigned: true, MergeReady: true},
		},
		{
			name:     "only cla signed",
			prLabels: []string{"cla: yes"},
			want:     resolve.Classification{ClaSigned: true},
		},
		{
			name:     "all three categories",
			prLabels: []string{"cla: yes", "merge-ready", "commit message fixup"},
			want:     resolve.Classification{ClaSigned: true, MergeReady: true, CommitFixup: true},
		},
		{
			name:     "no labels",
			prLabels: nil,
			want:     resolve.Classification{},
		},
		{
			name:     "unrelated labels only",
			prLabels: []string{"bug", "target: minor"},
			want:     resolve.Classification{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve.Classify(classifyConfig(), tt.prLabels)
			if got != tt.want {
				t.Errorf("Classify(%v) = %+v, want %+v", tt.prLabels, got, tt.want)
			}
		})
	}
}

func TestClassify_RegexPatterns(t *testing.T) {
	cfg := &config.Config{
		ClaSignedLabel:  config.Regex(regexp.MustCompile(`^cla:`)),
		MergeReadyLabel: config.Regex(regexp.MustCompile(`^(merge-ready|PR action: +merge)$`)),
	}

	got := resolve.Classify(cfg, []string{"cla: small", "PR action:  merge"})
	want := resolve.Classification{ClaSigned: true, MergeReady: true}
	if got != want {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
}

func TestClassify_SameLabelMaySatisfyMultipleCategories(t *testing.T) {
	// A pathological configuration may use the same text for two categories.
	// Validation does not reject it and classification stays independent.
	cfg := &config.Config{
		ClaSignedLabel:          config.Exact("cla: yes"),
		MergeReadyLabel:         config.Exact("ship it"),
		CommitMessageFixupLabel: config.Exact("ship it"),
	}

	got := resolve.Classify(cfg, []string{"ship it"})
	want := resolve.Classification{MergeReady: true, CommitFixup: true}
	if got != want {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
}

func TestClassify_NilFixupPatternNeverMatches(t *testing.T) {
	cfg := &config.Config{
		ClaSignedLabel:  config.Exact("cla: yes"),
		MergeReadyLabel: config.Exact("merge-ready"),
	}

	got := resolve.Classify(cfg, []string{"cla: yes", "merge-ready", "commit message fixup"})
	if got.CommitFixup {
		t.Error("CommitFixup = true with no fixup pattern configured")
	}
}
