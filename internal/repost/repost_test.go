package repost

import "testing"

func TestDescribeParseRoundTrip(t *testing.T) {
	text := Describe("Amazing sunset at Santorini", "alice")

	title, username, ok := ParseReference(text)
	if !ok {
		t.Fatal("reference not recognized")
	}
	if title != "Amazing sunset at Santorini" {
		t.Fatalf("title: got %q", title)
	}
	if username != "alice" {
		t.Fatalf("username: got %q", username)
	}
}

func TestParseReferenceInsideLongerText(t *testing.T) {
	text := Describe("Tokyo", "bob") + "\n\nMy own take on this trip."

	title, username, ok := ParseReference(text)
	if !ok || title != "Tokyo" || username != "bob" {
		t.Fatalf("got %q/%q ok=%v", title, username, ok)
	}
}

func TestParseReferenceAbsent(t *testing.T) {
	if _, _, ok := ParseReference("just a story about a repost of nothing"); ok {
		t.Fatal("false positive reference")
	}
	if _, _, ok := ParseReference(""); ok {
		t.Fatal("empty text matched")
	}
}
