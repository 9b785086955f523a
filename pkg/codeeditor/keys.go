package codeeditor

import (
	"strings"

	"fyne.io/fyne/v2"
)

// TypedRune handles printable input. The character is inserted the way
// the host toolkit would, then the auto-pair rules run against it.
func (e *CodeEditor) TypedRune(r rune) {
	if e.readOnly {
		return
	}

	e.insertText(string(r))

	if e.autoPairs {
		e.completePair(r)
	}
}

// TypedKey handles special keys. Tab replacement and auto-indentation
// intercept their keys here; everything else is plain cursor movement
// and deletion.
func (e *CodeEditor) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyTab:
		if e.readOnly {
			return
		}
		if e.replaceTab {
			e.insertText(e.tabReplace)
			return
		}
		e.insertText("\t")

	case fyne.KeyReturn, fyne.KeyEnter:
		if e.readOnly {
			return
		}
		e.insertNewline()

	case fyne.KeyBackspace:
		if e.readOnly {
			return
		}
		e.deletePreviousChar()

	case fyne.KeyDelete:
		if e.readOnly {
			return
		}
		e.deleteNextChar()

	case fyne.KeyLeft:
		e.setCursor(e.cursor - 1)

	case fyne.KeyRight:
		e.setCursor(e.cursor + 1)

	case fyne.KeyUp:
		e.moveCursorVertically(-1)

	case fyne.KeyDown:
		e.moveCursorVertically(1)

	case fyne.KeyHome:
		e.setCursor(e.doc.LineStart(e.CurrentLine()))

	case fyne.KeyEnd:
		line := e.CurrentLine()
		e.setCursor(e.doc.LineStart(line) + len([]rune(e.doc.Line(line))))
	}
}

// insertNewline inserts a line break. With auto-indentation enabled the
// leading whitespace of the current line is measured first, in columns
// (space = 1, tab = one tab stop), and that many spaces are inserted
// after the break.
func (e *CodeEditor) insertNewline() {
	indentation := 0
	if e.autoIndent {
		indentation = leadingIndentColumns(e.doc.Line(e.CurrentLine()), e.tabStopWidth)
	}

	e.insertText("\n")

	if e.autoIndent && indentation > 0 {
		e.insertText(strings.Repeat(" ", indentation))
	}
}

// completePair applies the auto-pair rules to a just-typed character.
// An opening delimiter gets its closer inserted with the cursor parked
// between them; a closing delimiter typed in front of an identical one
// replaces the freshly inserted character instead of duplicating it.
// The first pair the character belongs to settles the matter.
func (e *CodeEditor) completePair(r rune) {
	for _, pair := range delimiterPairs {
		if pair.open == r {
			e.insertText(string(pair.close))
			e.setCursor(e.cursor - 1)
			break
		}

		if pair.close == r {
			if e.charUnderCursor(0) == pair.close {
				e.deletePreviousChar()
				e.setCursor(e.cursor + 1)
			}
			break
		}
	}
}

// moveCursorVertically moves the cursor to the previous or next line,
// keeping the column when the target line is long enough.
func (e *CodeEditor) moveCursorVertically(delta int) {
	line := e.CurrentLine() + delta
	if line < 0 || line >= e.doc.LineCount() {
		return
	}

	column := e.CurrentColumn()
	target := []rune(e.doc.Line(line))
	if column > len(target) {
		column = len(target)
	}

	e.setCursor(e.doc.LineStart(line) + column)
}
