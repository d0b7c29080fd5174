package marc

import (
	"fmt"
	"strings"
)

// controlTagLimit is the first tag that is not a control field. Tags are
// compared as strings, not numbers.
const controlTagLimit = "010"

// normalizeTag right-justifies tag to a width of three, filling with spaces.
// Wider tags are returned unchanged.
func normalizeTag(tag string) string {
	return fmt.Sprintf("%3s", tag)
}

// isControlTag reports whether a normalized tag selects a control field.
func isControlTag(tag string) bool {
	return tag < controlTagLimit
}

// isSubjectTag reports whether a normalized tag belongs to a subject field.
func isSubjectTag(tag string) bool {
	return strings.HasPrefix(tag, "6")
}

func kindOf(tag string) Kind {
	if isControlTag(tag) {
		return ControlField
	}
	return DataField
}
