// Package ui contains the interactive prompts shown before a merge.
package ui

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// ConfirmMerge asks the operator to confirm merging a pull request into the
// resolved branches. Returns false when the operator declines.
func ConfirmMerge(prNumber int, branches []string) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Merge pull request #%d into %s?", prNumber, strings.Join(branches, ", ")),
		Default: false,
	}

	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return confirmed, nil
}
