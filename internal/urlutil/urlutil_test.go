package urlutil_test

import (
	"testing"

	"github.com/caretaking/auto-merge/internal/urlutil"
)

func TestExtractPathComponents(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		count int
		want  string
	}{
		{"https two components", "https://github.com/acme/widgets", 2, "acme/widgets"},
		{"https three components", "https://gitlab.com/group/sub/project", 3, "group/sub/project"},
		{"ssh colon format", "git@github.com:acme/widgets", 2, "acme/widgets"},
		{"ssh colon nested", "git@gitlab.com:group/sub/project", 2, "group/sub/project"},
		{"ssh protocol format", "ssh://git@github.com/acme/widgets", 2, "acme/widgets"},
		{"not enough components", "widgets", 2, ""},
		{"empty url", "", 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := urlutil.ExtractPathComponents(tt.url, tt.count)
			if got != tt.want {
				t.Errorf("ExtractPathComponents(%q, %d) = %q, want %q", tt.url, tt.count, got, tt.want)
			}
		})
	}
}
