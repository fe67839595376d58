package publish

import (
	"regexp"
	"strings"
	"time"
)

var (
	slugStrip   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slugify derives a filesystem-and-branch-safe identifier from free
// text: lowercase, strip everything outside [a-z0-9\s-], whitespace to
// single hyphens, collapse repeats, trim edge hyphens. Idempotent.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// timestampLayout is safe for both filenames and branch names:
// colons are normalized to hyphens, seconds precision.
const timestampLayout = "2006-01-02T15-04-05"

// Timestamp formats t as a filename- and branch-safe token.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
