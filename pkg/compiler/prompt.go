package compiler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cortexhq/cortex/pkg/models"
)

var (
	whenMarker = regexp.MustCompile(`(?i)\bwhen\b`)
	ifMarker   = regexp.MustCompile(`(?i)\bif\b`)
	thenMarker = regexp.MustCompile(`(?i)\bthen\b`)
)

// SplitPrompt splits a single free-text rule into its when/if/then parts.
// The prompt must contain the words "when" and "then"; "if" is optional and
// must sit between them.
func SplitPrompt(prompt string) (models.RawRule, error) {
	whenLoc := whenMarker.FindStringIndex(prompt)
	thenLoc := thenMarker.FindStringIndex(prompt)
	if whenLoc == nil || thenLoc == nil || thenLoc[0] <= whenLoc[1] {
		return models.RawRule{}, fmt.Errorf(
			"prompt must contain 'when' followed by 'then' (e.g. \"when I get an email then summarize it\")")
	}

	between := prompt[whenLoc[1]:thenLoc[0]]
	rule := models.RawRule{
		Then: strings.TrimSpace(trimPunct(prompt[thenLoc[1]:])),
	}

	if ifLoc := ifMarker.FindStringIndex(between); ifLoc != nil {
		rule.When = strings.TrimSpace(trimPunct(between[:ifLoc[0]]))
		rule.If = strings.TrimSpace(trimPunct(between[ifLoc[1]:]))
	} else {
		rule.When = strings.TrimSpace(trimPunct(between))
	}

	if rule.When == "" || rule.Then == "" {
		return models.RawRule{}, fmt.Errorf("prompt has empty 'when' or 'then' clause")
	}
	return rule, nil
}

func trimPunct(s string) string {
	return strings.Trim(s, " \t\n,.;:")
}
