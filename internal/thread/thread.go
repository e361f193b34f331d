// Package thread encodes and decodes the legacy single-field comment
// log: story text followed by appended comments, each introduced by a
// literal delimiter line. New writes go to comment rows; this codec
// exists to migrate and render rows that still carry the encoded form.
package thread

import "strings"

// Marker delimits appended comments inside the legacy text field.
const Marker = "--- Comment by"

// Entry is one decoded comment.
type Entry struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// Append returns the text with one more comment appended in the legacy
// wire form. An empty existing text yields the single-entry form.
func Append(existing, author, content string) string {
	entry := Marker + " " + author + " ---\n" + content
	if existing == "" {
		return entry
	}
	return existing + "\n\n" + entry
}

// HasEntries reports whether text carries at least one encoded comment.
func HasEntries(text string) bool {
	return strings.Contains(text, Marker)
}

// Parse splits stored text into the story body and its appended
// comments. The segment before the first marker is the body; each later
// segment's first line, up to the closing dashes, is the author and the
// remainder is that comment's content. The parse is best effort: an
// author or body that itself contains the marker corrupts the split,
// there is no escaping.
func Parse(text string) (body string, entries []Entry) {
	parts := strings.Split(text, Marker)
	body = strings.TrimSpace(parts[0])
	for _, part := range parts[1:] {
		authorLine, content, _ := strings.Cut(part, "\n")
		author := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(authorLine), "---"))
		entries = append(entries, Entry{
			Author:  author,
			Content: strings.TrimSpace(content),
		})
	}
	return body, entries
}
