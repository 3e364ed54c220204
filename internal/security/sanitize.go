package security

import (
	"regexp"
	"sync"
)

var (
	// Token regex patterns compiled once on first use.
	gitlabTokenRegex *regexp.Regexp
	githubTokenRegex *regexp.Regexp
	authHeaderRegex  *regexp.Regexp
	regexOnce        sync.Once
)

func compileRegexPatterns() {
	regexOnce.Do(func() {
		// GitLab personal access tokens: glpat-[6+ chars]. Real tokens are
		// 20+ chars, shorter ones are caught for safety.
		gitlabTokenRegex = regexp.MustCompile(`glpat-[a-zA-Z0-9_-]{6,}`)

		// GitHub personal access tokens: ghp_/gho_/ghs_ + 20+ chars.
		githubTokenRegex = regexp.MustCompile(`gh[ops]_[a-zA-Z0-9]{20,}`)

		// Authorization headers, both Bearer and Basic.
		authHeaderRegex = regexp.MustCompile(`(?i)authorization:\s*(?:bearer|basic)\s+[a-zA-Z0-9+/=_-]{10,}`)
	})
}

// SanitizeString redacts forge API tokens and authorization headers from a
// string. Error messages from the GitHub and GitLab clients pass through here
// before they are surfaced to the user.
//
// Safe for concurrent use; patterns are compiled via sync.Once.
func SanitizeString(s string) string {
	compileRegexPatterns()

	s = gitlabTokenRegex.ReplaceAllString(s, "[gitlab-token-redacted]")
	s = githubTokenRegex.ReplaceAllString(s, "[github-token-redacted]")
	s = authHeaderRegex.ReplaceAllString(s, "authorization: [redacted]")
	return s
}

// SanitizeError returns err's message with tokens redacted, or "" for nil.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeString(err.Error())
}
