package codeeditor

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Line operations exposed for shortcut handling and embedding
// applications.

// IndentLine prepends one indentation unit to the cursor's line.
func (e *CodeEditor) IndentLine() {
	if e.readOnly {
		return
	}

	indent := "\t"
	if e.replaceTab {
		indent = e.tabReplace
	}

	line := e.CurrentLine()
	cursor := e.cursor
	e.doc.Insert(e.doc.LineStart(line), indent)
	e.setCursor(cursor + len([]rune(indent)))
}

// UnindentLine removes one leading indentation unit from the cursor's
// line: a tab, the tab-replacement run, or whatever shorter leading
// spaces exist.
func (e *CodeEditor) UnindentLine() {
	if e.readOnly {
		return
	}

	line := e.CurrentLine()
	start := e.doc.LineStart(line)
	text := e.doc.Line(line)

	removed := 0
	switch {
	case strings.HasPrefix(text, "\t"):
		removed = 1
	case strings.HasPrefix(text, e.tabReplace) && len(e.tabReplace) > 0:
		removed = len(e.tabReplace)
	default:
		for removed < len(text) && text[removed] == ' ' {
			removed++
		}
	}
	if removed == 0 {
		return
	}

	cursor := e.cursor
	e.doc.Delete(start, start+removed)

	if cursor > start {
		cursor -= removed
		if cursor < start {
			cursor = start
		}
	}
	e.setCursor(cursor)
}

// DuplicateLine inserts a copy of the cursor's line below it and moves
// the cursor to the copy.
func (e *CodeEditor) DuplicateLine() {
	if e.readOnly {
		return
	}

	line := e.CurrentLine()
	text := e.doc.Line(line)
	column := e.CurrentColumn()

	end := e.doc.LineStart(line) + len([]rune(text))
	e.doc.Insert(end, "\n"+text)
	e.setCursor(e.doc.LineStart(line+1) + column)
}

// ToggleComment adds or removes the language's line-comment prefix on
// the cursor's line, keeping the indentation.
func (e *CodeEditor) ToggleComment() {
	if e.readOnly {
		return
	}

	language := ""
	if e.highlighter != nil {
		language = e.highlighter.Language()
	}
	prefix := commentPrefix(language)

	line := e.CurrentLine()
	start := e.doc.LineStart(line)
	text := e.doc.Line(line)
	trimmed := strings.TrimLeft(text, " \t")
	indentLen := len([]rune(text)) - len([]rune(trimmed))

	cursor := e.cursor

	if strings.HasPrefix(trimmed, prefix+" ") {
		e.doc.Delete(start+indentLen, start+indentLen+len([]rune(prefix))+1)
		cursor -= len([]rune(prefix)) + 1
	} else if strings.HasPrefix(trimmed, prefix) {
		e.doc.Delete(start+indentLen, start+indentLen+len([]rune(prefix)))
		cursor -= len([]rune(prefix))
	} else if trimmed != "" {
		e.doc.Insert(start+indentLen, prefix+" ")
		cursor += len([]rune(prefix)) + 1
	} else {
		return
	}

	if cursor < start {
		cursor = start
	}
	e.setCursor(cursor)
}

// GoToLine moves the cursor to the start of the given one-based line.
func (e *CodeEditor) GoToLine(number int) {
	if number < 1 || number > e.doc.LineCount() {
		return
	}
	e.setCursor(e.doc.LineStart(number - 1))
}

// commentPrefix returns the line-comment prefix for a language.
func commentPrefix(language string) string {
	switch language {
	case "python", "ruby", "shell", "bash", "yaml":
		return "#"
	case "sql":
		return "--"
	case "lua":
		return "--"
	default:
		return "//"
	}
}

// KeyboardShortcuts routes modifier combinations to the editor's line
// operations. The host wires it to its canvas with Register.
type KeyboardShortcuts struct {
	editor *CodeEditor
}

// NewKeyboardShortcuts creates a shortcut handler for an editor.
func NewKeyboardShortcuts(editor *CodeEditor) *KeyboardShortcuts {
	return &KeyboardShortcuts{editor: editor}
}

// Handle processes a Ctrl/Cmd combination and reports whether it was
// consumed.
func (ks *KeyboardShortcuts) Handle(key fyne.KeyName) bool {
	switch key {
	case fyne.KeyD:
		ks.editor.DuplicateLine()
		return true

	case fyne.KeySlash:
		ks.editor.ToggleComment()
		return true

	case fyne.KeyRightBracket:
		ks.editor.IndentLine()
		return true

	case fyne.KeyLeftBracket:
		ks.editor.UnindentLine()
		return true
	}

	return false
}
