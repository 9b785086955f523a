package codeeditor

import "testing"

func TestMatchDelimiterForward(t *testing.T) {
	doc := NewDocument("(abc)")

	origin, match, ok := matchDelimiter(doc, 0)
	if !ok {
		t.Fatal("Expected a match for the opening parenthesis")
	}
	if origin != 0 {
		t.Errorf("Expected origin 0, got %d", origin)
	}
	if match != 4 {
		t.Errorf("Expected match at 4, got %d", match)
	}
}

func TestMatchDelimiterBackward(t *testing.T) {
	doc := NewDocument("(abc)")

	// Cursor placed just past the closing parenthesis.
	origin, match, ok := matchDelimiter(doc, 5)
	if !ok {
		t.Fatal("Expected a match for the closing parenthesis")
	}
	if origin != 4 {
		t.Errorf("Expected origin 4, got %d", origin)
	}
	if match != 0 {
		t.Errorf("Expected match at 0, got %d", match)
	}
}

func TestMatchDelimiterAfterOpening(t *testing.T) {
	// Cursor immediately after the first opening parenthesis must
	// resolve to the outer closer, not the inner one.
	doc := NewDocument("(a(b)c)")

	origin, match, ok := matchDelimiter(doc, 1)
	if !ok {
		t.Fatal("Expected a match after the first opening parenthesis")
	}
	if origin != 0 {
		t.Errorf("Expected origin 0, got %d", origin)
	}
	if match != 6 {
		t.Errorf("Expected the outer closer at 6, got %d", match)
	}
}

func TestMatchDelimiterNested(t *testing.T) {
	doc := NewDocument("(a(b)c)")

	// On the inner opener the scan must resolve to the inner closer.
	origin, match, ok := matchDelimiter(doc, 2)
	if !ok {
		t.Fatal("Expected a match for the inner parenthesis")
	}
	if origin != 2 {
		t.Errorf("Expected origin 2, got %d", origin)
	}
	if match != 4 {
		t.Errorf("Expected the inner closer at 4, got %d", match)
	}
}

func TestMatchDelimiterAtDocumentEdges(t *testing.T) {
	// A pair spanning the whole document: the forward scan starts at
	// position 0 and the backward scan ends there.
	doc := NewDocument("{abc}")

	origin, match, ok := matchDelimiter(doc, 0)
	if !ok {
		t.Fatal("Expected a match scanning forward from the first character")
	}
	if origin != 0 || match != 4 {
		t.Errorf("Expected 0 -> 4, got %d -> %d", origin, match)
	}

	origin, match, ok = matchDelimiter(doc, doc.CharacterCount())
	if !ok {
		t.Fatal("Expected a match scanning backward from the document end")
	}
	if origin != 4 || match != 0 {
		t.Errorf("Expected 4 -> 0, got %d -> %d", origin, match)
	}
}

func TestMatchDelimiterUnmatched(t *testing.T) {
	cases := []struct {
		name string
		text string
		pos  int
	}{
		{"unclosed opener", "(abc", 0},
		{"unopened closer", "abc)", 4},
		{"no delimiter", "abc", 1},
		{"empty document", "", 0},
		{"deeper unclosed", "((a)", 0},
	}

	for _, tc := range cases {
		doc := NewDocument(tc.text)
		if _, _, ok := matchDelimiter(doc, tc.pos); ok {
			t.Errorf("%s: expected no match in %q at %d", tc.name, tc.text, tc.pos)
		}
	}
}

func TestMatchDelimiterAllPairs(t *testing.T) {
	cases := []struct {
		text  string
		match int
	}{
		{"(x)", 2},
		{"{x}", 2},
		{"<x>", 2},
		{"[x]", 2},
	}

	for _, tc := range cases {
		doc := NewDocument(tc.text)
		_, match, ok := matchDelimiter(doc, 0)
		if !ok {
			t.Errorf("Expected a match in %q", tc.text)
			continue
		}
		if match != tc.match {
			t.Errorf("%q: expected match at %d, got %d", tc.text, tc.match, match)
		}
	}
}

func TestMatchDelimiterMultiline(t *testing.T) {
	doc := NewDocument("func main() {\n\tprintln(1)\n}\n")

	// Opening brace of the function body.
	origin, match, ok := matchDelimiter(doc, 12)
	if !ok {
		t.Fatal("Expected a match for the function body brace")
	}
	if origin != 12 {
		t.Errorf("Expected origin 12, got %d", origin)
	}
	if doc.CharacterAt(match) != '}' {
		t.Errorf("Expected a closing brace at %d, got %q", match, doc.CharacterAt(match))
	}
}

func TestMatchDelimiterFirstPairWins(t *testing.T) {
	// The angle bracket belongs to a pair, so the scan anchors on it
	// and fails instead of falling through to another pair.
	doc := NewDocument("a < b")

	if _, _, ok := matchDelimiter(doc, 2); ok {
		t.Error("Expected no match for a lone comparison operator")
	}
}
