package formschema

import (
	"regexp"
	"strings"
)

var (
	slugStrip      = regexp.MustCompile(`[^a-z0-9\s]+`)
	slugWhitespace = regexp.MustCompile(`\s+`)
)

// GenerateFieldID derives a field id from a label: lowercased, anything
// outside [a-z0-9] and whitespace removed, whitespace runs joined with a
// single underscore. The mapping is lossy and collisions are not detected
// here; "Military Status" becomes "military_status".
func GenerateFieldID(label string) string {
	s := strings.ToLower(label)
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return slugWhitespace.ReplaceAllString(s, "_")
}
