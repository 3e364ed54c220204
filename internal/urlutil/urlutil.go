// Package urlutil provides URL parsing utilities for extracting path
// components from git remote URLs.
//
// It handles three URL formats:
//   - HTTPS: https://github.com/owner/repo
//   - SSH colon: git@github.com:owner/repo
//   - SSH protocol: ssh://git@github.com/owner/repo
//
// The .git suffix should be removed by the caller before calling
// [ExtractPathComponents].
package urlutil

import "strings"

// minColonParts is the minimum number of parts expected when splitting SSH
// colon format URLs: git@host:path splits into ["git@host", "path"].
const minColonParts = 2

// ExtractPathComponents extracts the last N path components from a git
// remote URL. Returns an empty string if the URL doesn't contain enough
// components.
//
// Examples:
//
//	ExtractPathComponents("git@github.com:owner/repo", 2) → "owner/repo"
//	ExtractPathComponents("https://gitlab.com/group/sub/project", 3) → "group/sub/project"
func ExtractPathComponents(url string, componentCount int) string {
	if strings.HasPrefix(url, "ssh://git@") {
		parts := strings.Split(url, "/")
		if len(parts) >= componentCount {
			return strings.Join(parts[len(parts)-componentCount:], "/")
		}
		return ""
	}

	if strings.HasPrefix(url, "git@") {
		parts := strings.Split(url, ":")
		if len(parts) >= minColonParts {
			return parts[len(parts)-1]
		}
		return ""
	}

	parts := strings.Split(url, "/")
	if len(parts) >= componentCount {
		return strings.Join(parts[len(parts)-componentCount:], "/")
	}
	return ""
}
