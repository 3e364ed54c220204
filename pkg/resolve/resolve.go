// Package resolve determines what a pull request's labels mean for a merge:
// which gating categories apply and which branches the change lands in.
//
// Everything in this package is a pure function of its inputs. Nothing is
// cached between calls, nothing is logged, and no I/O happens here; callers
// combine the validated configuration with live pull request data and act on
// the result.
package resolve

import (
	"errors"
	"fmt"

	"github.com/caretaking/auto-merge/pkg/config"
)

// ErrNoTargetLabel is returned when no configured target label matches any
// label on the pull request. It is distinct from a successful resolution to
// an empty branch list; callers must not merge in either case, but only the
// former indicates a labeling problem.
var ErrNoTargetLabel = errors.New("no target label matched the pull request labels")

// Targets resolves the destination branches for a pull request.
//
// Entries are evaluated in configuration order and the first whose pattern
// matches at least one attached label wins; later matches are ignored, so
// ordering in the configuration is the tie-break. The selected entry's
// branches are returned exactly as configured (or as computed from
// targetBranch for derived specs): order preserved, no deduplication, and an
// empty list is a valid result the caller should reject before merging.
//
// Regular-expression patterns come from trusted configuration authors;
// catastrophic backtracking is not guarded against here.
func Targets(labels []config.TargetLabel, prLabels []string, targetBranch string) ([]string, error) {
	for _, entry := range labels {
		if entry.Pattern == nil || !entry.Pattern.MatchesAny(prLabels) {
			continue
		}
		if entry.Branches == nil {
			return nil, fmt.Errorf("target label %q has no branches configured", entry.Pattern)
		}
		branches, err := entry.Branches.Resolve(targetBranch)
		if err != nil {
			return nil, fmt.Errorf("resolving branches for label %q: %w", entry.Pattern, err)
		}
		return branches, nil
	}
	return nil, ErrNoTargetLabel
}

// MatchingLabels returns every configured entry whose pattern matches the
// pull request, in configuration order. Targets silently takes the first of
// these; callers that want to warn about ambiguous configurations (an exact
// pattern shadowed by a broader regex, say) can diagnose with this instead.
func MatchingLabels(labels []config.TargetLabel, prLabels []string) []config.TargetLabel {
	var matched []config.TargetLabel
	for _, entry := range labels {
		if entry.Pattern != nil && entry.Pattern.MatchesAny(prLabels) {
			matched = append(matched, entry)
		}
	}
	return matched
}
