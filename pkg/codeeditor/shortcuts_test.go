package codeeditor

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestIndentLine(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetText("line")
	editor.SetCursorPosition(2)

	editor.IndentLine()
	if editor.Text() != "    line" {
		t.Errorf("Expected spaces prepended, got %q", editor.Text())
	}
	if editor.CursorPosition() != 6 {
		t.Errorf("Expected the cursor to follow the indentation, got %d", editor.CursorPosition())
	}

	editor.SetTabReplace(false)
	editor.IndentLine()
	if editor.Text() != "\t    line" {
		t.Errorf("Expected a hard tab prepended, got %q", editor.Text())
	}
}

func TestUnindentLine(t *testing.T) {
	_ = test.NewApp()

	tests := []struct {
		name   string
		text   string
		cursor int
		want   string
	}{
		{"tab", "\tline", 3, "line"},
		{"replacement run", "    line", 6, "line"},
		{"shorter spaces", "  line", 4, "line"},
		{"no indentation", "line", 2, "line"},
	}

	for _, tt := range tests {
		editor := NewCodeEditor()
		editor.SetText(tt.text)
		editor.SetCursorPosition(tt.cursor)

		editor.UnindentLine()
		if editor.Text() != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, editor.Text())
		}
	}
}

func TestDuplicateLine(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetText("first\nsecond")
	editor.SetCursorPosition(2) // inside "first"

	editor.DuplicateLine()
	if editor.Text() != "first\nfirst\nsecond" {
		t.Errorf("Expected the line duplicated below, got %q", editor.Text())
	}
	if editor.CurrentLine() != 1 || editor.CurrentColumn() != 2 {
		t.Errorf("Expected the cursor on the copy at column 2, got line %d column %d",
			editor.CurrentLine(), editor.CurrentColumn())
	}
}

func TestToggleComment(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetText("\tcall()")
	editor.SetCursorPosition(4)

	editor.ToggleComment()
	if editor.Text() != "\t// call()" {
		t.Errorf("Expected the line commented after the indentation, got %q", editor.Text())
	}

	editor.ToggleComment()
	if editor.Text() != "\tcall()" {
		t.Errorf("Expected the comment removed, got %q", editor.Text())
	}
}

func TestToggleCommentLanguagePrefix(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetHighlighter(NewSyntaxHighlighter("python"))
	editor.SetText("print(1)")

	editor.ToggleComment()
	if editor.Text() != "# print(1)" {
		t.Errorf("Expected the Python prefix, got %q", editor.Text())
	}
}

func TestToggleCommentEmptyLine(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetText("")

	editor.ToggleComment()
	if editor.Text() != "" {
		t.Errorf("Expected an empty line untouched, got %q", editor.Text())
	}
}

func TestGoToLine(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetText("one\ntwo\nthree")

	editor.GoToLine(3)
	if editor.CurrentLine() != 2 || editor.CurrentColumn() != 0 {
		t.Errorf("Expected line 2 column 0, got line %d column %d",
			editor.CurrentLine(), editor.CurrentColumn())
	}

	editor.GoToLine(99)
	if editor.CurrentLine() != 2 {
		t.Error("Expected an out-of-range line number to be ignored")
	}
	editor.GoToLine(0)
	if editor.CurrentLine() != 2 {
		t.Error("Expected a zero line number to be ignored")
	}
}

func TestLineOperationsReadOnly(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetText("line")
	editor.SetReadOnly(true)

	editor.IndentLine()
	editor.UnindentLine()
	editor.DuplicateLine()
	editor.ToggleComment()

	if editor.Text() != "line" {
		t.Errorf("Expected a read-only document untouched, got %q", editor.Text())
	}
}

func TestKeyboardShortcuts(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetText("line")
	ks := NewKeyboardShortcuts(editor)

	if !ks.Handle(fyne.KeyD) {
		t.Error("Expected Ctrl+D to be consumed")
	}
	if editor.Text() != "line\nline" {
		t.Errorf("Expected the line duplicated, got %q", editor.Text())
	}

	if ks.Handle(fyne.KeyF1) {
		t.Error("Expected an unbound key to pass through")
	}
}
