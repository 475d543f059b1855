package docjudge

import (
	"fmt"
	"strings"
)

// FormatFeedback renders a judgment as deterministic feedback text for
// the revision prompt: each category in canonical order with its score,
// followed by enumerated issues and suggestions when present.
func FormatFeedback(j *DocumentJudgment) string {
	var sb strings.Builder

	for _, c := range j.Categories() {
		fmt.Fprintf(&sb, "\n%s Analysis:\n", displayName(c.Name))
		fmt.Fprintf(&sb, "Score: %s\n", c.Judgment.Score)

		if len(c.Judgment.Issues) > 0 {
			sb.WriteString("Issues:\n")
			for _, issue := range c.Judgment.Issues {
				fmt.Fprintf(&sb, "- %s\n", issue)
			}
		}

		if len(c.Judgment.Suggestions) > 0 {
			sb.WriteString("Suggestions:\n")
			for _, suggestion := range c.Judgment.Suggestions {
				fmt.Fprintf(&sb, "- %s\n", suggestion)
			}
		}
	}

	return sb.String()
}

// displayName turns a category key into its display form,
// e.g. "style_guidelines" becomes "Style Guidelines".
func displayName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
