package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeText produces the comparison key for unique titles and names:
//   - trims leading/trailing whitespace
//   - applies Unicode case folding ("Ärger" and "äRGER" collide)
//   - compresses runs of whitespace into one space
//
// Two goals whose titles normalize to the same key collide in one tenant.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	// A Caser is stateful; one per call.
	text = cases.Fold().String(text)
	return strings.Join(strings.Fields(text), " ")
}
