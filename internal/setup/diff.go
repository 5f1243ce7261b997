package setup

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown.
const DefaultDiffMaxLines = 40

// DiffPreview renders a unified diff between the current and proposed registry
// content, truncated to maxLines (<=0 uses DefaultDiffMaxLines).
func DiffPreview(current string, proposed string, maxLines int) (string, bool) {
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}
	unified := udiff.Unified("current", "proposed", current, proposed)
	lines := strings.Split(strings.TrimRight(unified, "\n"), "\n")
	if len(lines) <= maxLines {
		return unified, false
	}
	return strings.Join(lines[:maxLines], "\n") + "\n", true
}
