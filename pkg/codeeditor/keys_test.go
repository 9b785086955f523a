package codeeditor

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func typeString(e *CodeEditor, s string) {
	for _, r := range s {
		e.TypedRune(r)
	}
}

func pressKey(e *CodeEditor, name fyne.KeyName) {
	e.TypedKey(&fyne.KeyEvent{Name: name})
}

func TestAutoPairInsertsCloser(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.TypedRune('(')

	if editor.Text() != "()" {
		t.Errorf("Expected \"()\", got %q", editor.Text())
	}
	if editor.CursorPosition() != 1 {
		t.Errorf("Expected the cursor between the pair, got %d", editor.CursorPosition())
	}
}

func TestAutoPairTypesOverCloser(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.TypedRune('(')
	editor.TypedRune(')')

	if editor.Text() != "()" {
		t.Errorf("Expected typing the closer to skip over the inserted one, got %q", editor.Text())
	}
	if editor.CursorPosition() != 2 {
		t.Errorf("Expected the cursor past the pair, got %d", editor.CursorPosition())
	}
}

func TestAutoPairCloserWithoutExisting(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.TypedRune(')')

	if editor.Text() != ")" {
		t.Errorf("Expected a lone closer to insert normally, got %q", editor.Text())
	}
}

func TestAutoPairAllPairs(t *testing.T) {
	_ = test.NewApp()

	cases := []struct {
		typed rune
		want  string
	}{
		{'(', "()"},
		{'{', "{}"},
		{'<', "<>"},
		{'[', "[]"},
		{'"', `""`},
	}

	for _, tc := range cases {
		editor := NewCodeEditor()
		editor.TypedRune(tc.typed)
		if editor.Text() != tc.want {
			t.Errorf("Typing %q produced %q, expected %q", tc.typed, editor.Text(), tc.want)
		}
	}
}

func TestAutoPairDisabled(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetAutoPairs(false)
	editor.TypedRune('(')

	if editor.Text() != "(" {
		t.Errorf("Expected no auto-close when disabled, got %q", editor.Text())
	}
}

func TestTabReplacement(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetTabReplaceSize(4)
	pressKey(editor, fyne.KeyTab)

	if editor.Text() != "    " {
		t.Errorf("Expected four spaces, got %q", editor.Text())
	}
}

func TestTabReplacementDisabled(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetTabReplace(false)
	pressKey(editor, fyne.KeyTab)

	if editor.Text() != "\t" {
		t.Errorf("Expected a literal tab, got %q", editor.Text())
	}
}

func TestAutoIndentSpaces(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	typeString(editor, "    x")
	pressKey(editor, fyne.KeyReturn)

	if editor.Text() != "    x\n    " {
		t.Errorf("Expected the new line to carry four spaces, got %q", editor.Text())
	}
}

func TestAutoIndentTabColumns(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetTabStopWidth(8)
	editor.SetText("\tx")
	pressKey(editor, fyne.KeyEnd)
	pressKey(editor, fyne.KeyReturn)

	if editor.Text() != "\tx\n        " {
		t.Errorf("Expected eight spaces of indentation, got %q", editor.Text())
	}
}

func TestAutoIndentMixedWhitespace(t *testing.T) {
	_ = test.NewApp()

	// A tab counts one full tab stop, a space one column, even mixed.
	editor := NewCodeEditor()
	editor.SetTabStopWidth(4)
	editor.SetText("\t  x")
	pressKey(editor, fyne.KeyEnd)
	pressKey(editor, fyne.KeyReturn)

	if editor.Text() != "\t  x\n      " {
		t.Errorf("Expected six spaces of indentation, got %q", editor.Text())
	}
}

func TestAutoIndentDisabled(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetAutoIndent(false)
	typeString(editor, "    x")
	pressKey(editor, fyne.KeyReturn)

	if editor.Text() != "    x\n" {
		t.Errorf("Expected no indentation carry-over, got %q", editor.Text())
	}
}

func TestBackspaceAndDelete(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetAutoPairs(false)
	typeString(editor, "ab")

	pressKey(editor, fyne.KeyBackspace)
	if editor.Text() != "a" {
		t.Errorf("Backspace produced %q", editor.Text())
	}

	pressKey(editor, fyne.KeyLeft)
	pressKey(editor, fyne.KeyDelete)
	if editor.Text() != "" {
		t.Errorf("Delete produced %q", editor.Text())
	}
}

func TestCursorNavigation(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetText("short\nlonger line")

	pressKey(editor, fyne.KeyDown)
	if editor.CurrentLine() != 1 {
		t.Errorf("Expected line 1 after Down, got %d", editor.CurrentLine())
	}

	pressKey(editor, fyne.KeyEnd)
	if editor.CurrentColumn() != 11 {
		t.Errorf("Expected column 11 after End, got %d", editor.CurrentColumn())
	}

	// Moving up clamps the column to the shorter line.
	pressKey(editor, fyne.KeyUp)
	if editor.CurrentLine() != 0 || editor.CurrentColumn() != 5 {
		t.Errorf("Expected clamped position 0:5, got %d:%d",
			editor.CurrentLine(), editor.CurrentColumn())
	}

	pressKey(editor, fyne.KeyHome)
	if editor.CursorPosition() != 0 {
		t.Errorf("Expected position 0 after Home, got %d", editor.CursorPosition())
	}
}

func TestReadOnlyRejectsEdits(t *testing.T) {
	_ = test.NewApp()

	editor := NewCodeEditor()
	editor.SetText("locked")
	editor.SetReadOnly(true)

	editor.TypedRune('x')
	pressKey(editor, fyne.KeyTab)
	pressKey(editor, fyne.KeyReturn)
	pressKey(editor, fyne.KeyBackspace)

	if editor.Text() != "locked" {
		t.Errorf("Read-only editor was modified to %q", editor.Text())
	}
}
