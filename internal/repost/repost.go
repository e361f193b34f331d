// Package repost handles the back-reference a repost carries to the
// entry it reposts. New reposts store an explicit post id; rows created
// before that column existed only carry the human-readable reference
// line, which is re-parsed at read time.
package repost

import (
	"fmt"
	"regexp"
)

// refPattern matches the reference line stamped on a repost. Dots do
// not cross newlines, so the username ends at the line break.
var refPattern = regexp.MustCompile(`Repost of: "(.+)" by (.+)`)

// Describe renders the reference line stored on a repost.
func Describe(title, username string) string {
	return fmt.Sprintf(`Repost of: "%s" by %s`, title, username)
}

// ParseReference extracts the referenced title and username from stored
// text. ok is false when the text carries no reference line.
func ParseReference(text string) (title, username string, ok bool) {
	m := refPattern.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
