package resolve

import "github.com/caretaking/auto-merge/pkg/config"

// Classification reports which gating label categories apply to a pull
// request. Categories are matched independently; a single label may satisfy
// several at once, and nothing here rejects that.
type Classification struct {
	// ClaSigned is true when a label matches the CLA signed pattern.
	ClaSigned bool

	// MergeReady is true when a label matches the merge ready pattern.
	MergeReady bool

	// CommitFixup is true when a label matches the commit message fixup pattern.
	CommitFixup bool
}

// Classify matches the pull request's labels against the three category
// patterns of the configuration. A nil pattern (only possible for the
// optional fixup label) never matches.
func Classify(cfg *config.Config, prLabels []string) Classification {
	return Classification{
		ClaSigned:   patternMatchesAny(cfg.ClaSignedLabel, prLabels),
		MergeReady:  patternMatchesAny(cfg.MergeReadyLabel, prLabels),
		CommitFixup: patternMatchesAny(cfg.CommitMessageFixupLabel, prLabels),
	}
}

func patternMatchesAny(p *config.LabelPattern, names []string) bool {
	return p != nil && p.MatchesAny(names)
}
