package codeeditor

import "strings"

// Document holds the text being edited as a rune-addressable sequence.
// It is the character-access surface the editor, the gutter and the
// bracket scanner all work against, and can be used standalone in tests.
type Document struct {
	runes []rune

	onChanged []func()
}

// NewDocument creates a document with the given initial text.
func NewDocument(text string) *Document {
	return &Document{runes: []rune(text)}
}

// SetText replaces the whole document content.
func (d *Document) SetText(text string) {
	d.runes = []rune(text)
	d.notifyChanged()
}

// Text returns the full document content.
func (d *Document) Text() string {
	return string(d.runes)
}

// CharacterCount returns the number of characters in the document.
func (d *Document) CharacterCount() int {
	return len(d.runes)
}

// CharacterAt returns the character at the given position, or the zero
// rune when the position is outside the document.
func (d *Document) CharacterAt(pos int) rune {
	if pos < 0 || pos >= len(d.runes) {
		return 0
	}
	return d.runes[pos]
}

// Insert inserts text at the given position. Positions outside the
// document are clamped to its ends.
func (d *Document) Insert(pos int, text string) {
	pos = d.clamp(pos)
	ins := []rune(text)
	out := make([]rune, 0, len(d.runes)+len(ins))
	out = append(out, d.runes[:pos]...)
	out = append(out, ins...)
	out = append(out, d.runes[pos:]...)
	d.runes = out
	d.notifyChanged()
}

// Delete removes the characters in [start, end). The range is clamped to
// the document; an empty or inverted range is a no-op.
func (d *Document) Delete(start, end int) {
	start = d.clamp(start)
	end = d.clamp(end)
	if start >= end {
		return
	}
	d.runes = append(d.runes[:start], d.runes[end:]...)
	d.notifyChanged()
}

// LineCount returns the number of lines. An empty document has one line.
func (d *Document) LineCount() int {
	count := 1
	for _, r := range d.runes {
		if r == '\n' {
			count++
		}
	}
	return count
}

// Line returns the text of the given zero-based line, without its
// trailing newline. Out-of-range lines are empty.
func (d *Document) Line(index int) string {
	if index < 0 {
		return ""
	}
	start, ok := d.lineStart(index)
	if !ok {
		return ""
	}
	end := start
	for end < len(d.runes) && d.runes[end] != '\n' {
		end++
	}
	return string(d.runes[start:end])
}

// LineStart returns the document position of the first character of the
// given line, or -1 when the line does not exist.
func (d *Document) LineStart(index int) int {
	start, ok := d.lineStart(index)
	if !ok {
		return -1
	}
	return start
}

// LineAt returns the zero-based line containing the given position.
func (d *Document) LineAt(pos int) int {
	pos = d.clamp(pos)
	line := 0
	for i := 0; i < pos; i++ {
		if d.runes[i] == '\n' {
			line++
		}
	}
	return line
}

// ColumnAt returns the zero-based column of the given position within
// its line.
func (d *Document) ColumnAt(pos int) int {
	pos = d.clamp(pos)
	col := 0
	for i := pos - 1; i >= 0 && d.runes[i] != '\n'; i-- {
		col++
	}
	return col
}

// OnChanged registers a callback invoked after every content mutation.
func (d *Document) OnChanged(fn func()) {
	if fn != nil {
		d.onChanged = append(d.onChanged, fn)
	}
}

func (d *Document) notifyChanged() {
	for _, fn := range d.onChanged {
		fn()
	}
}

func (d *Document) lineStart(index int) (int, bool) {
	if index == 0 {
		return 0, true
	}
	line := 0
	for i, r := range d.runes {
		if r == '\n' {
			line++
			if line == index {
				return i + 1, true
			}
		}
	}
	return 0, false
}

func (d *Document) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(d.runes) {
		return len(d.runes)
	}
	return pos
}

// leadingIndentColumns measures the whitespace run at the start of a line
// in columns: a space counts as one column, a tab as a full tab stop.
func leadingIndentColumns(line string, tabStop int) int {
	columns := 0
	for _, r := range line {
		if !strings.ContainsRune("\t ", r) {
			break
		}
		if r == ' ' {
			columns++
		} else {
			columns += tabStop
		}
	}
	return columns
}
