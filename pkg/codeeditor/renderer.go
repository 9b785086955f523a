package codeeditor

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// codeEditorRenderer paints the editor: background, line number area on
// the left, and a scrollable content layer holding the highlight
// regions, the syntax-colored text and the caret.
type codeEditorRenderer struct {
	editor     *CodeEditor
	background *canvas.Rectangle
	content    *fyne.Container
	scroll     *container.Scroll
}

func newCodeEditorRenderer(editor *CodeEditor) *codeEditorRenderer {
	r := &codeEditorRenderer{
		editor:     editor,
		background: canvas.NewRectangle(nil),
		content:    container.NewWithoutLayout(),
	}

	r.scroll = container.NewScroll(r.content)
	r.scroll.OnScrolled = func(pos fyne.Position) {
		editor.scrolled(pos)
	}

	r.rebuild()
	return r
}

func (r *codeEditorRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)

	gutterWidth := r.editor.lineNumbers.widthHint()
	r.editor.lineNumbers.Move(fyne.NewPos(0, 0))
	r.editor.lineNumbers.Resize(fyne.NewSize(gutterWidth, size.Height))

	r.scroll.Move(fyne.NewPos(gutterWidth, 0))
	r.scroll.Resize(fyne.NewSize(size.Width-gutterWidth, size.Height))

	r.editor.viewportSize = fyne.NewSize(size.Width-gutterWidth, size.Height)
	r.rebuild()
}

func (r *codeEditorRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 100)
}

func (r *codeEditorRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.editor)
}

func (r *codeEditorRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.editor.lineNumbers, r.scroll}
}

func (r *codeEditorRenderer) Destroy() {}

// rebuild regenerates the content layer from the document, the extra
// selections and the highlighter's token runs.
func (r *codeEditorRenderer) rebuild() {
	editor := r.editor
	style := editor.style

	textFormat := style.Format(FormatText)
	r.background.FillColor = textFormat.Background

	lineHeight := editor.lineHeight()
	charWidth := editor.charWidth()

	contentSize := r.contentSize()

	objects := make([]fyne.CanvasObject, 0, editor.doc.LineCount()+len(editor.selections)+1)

	// Highlight regions go beneath the text.
	for _, sel := range editor.selections {
		if sel.Format.Background == nil {
			continue
		}

		rect := canvas.NewRectangle(sel.Format.Background)

		line := editor.doc.LineAt(sel.Start)
		y, height := editor.lineBoundingRect(line)

		if sel.FullWidth {
			rect.Move(fyne.NewPos(0, y))
			rect.Resize(fyne.NewSize(contentSize.Width, height))
		} else {
			column := editor.doc.ColumnAt(sel.Start)
			width := float32(sel.End-sel.Start) * charWidth
			rect.Move(fyne.NewPos(float32(column)*charWidth, y))
			rect.Resize(fyne.NewSize(width, height))
		}

		objects = append(objects, rect)
	}

	objects = append(objects, r.textObjects()...)

	if editor.focused && !editor.readOnly {
		caret := canvas.NewRectangle(textFormat.Foreground)
		caretY, _ := editor.lineBoundingRect(editor.CurrentLine())
		caret.Move(fyne.NewPos(float32(editor.CurrentColumn())*charWidth, caretY))
		caret.Resize(fyne.NewSize(2, lineHeight))
		objects = append(objects, caret)
	}

	r.content.Objects = objects
	r.content.Resize(contentSize)
	r.scroll.Refresh()
}

// textObjects lays the document text out line by line, splitting each
// line at the highlighter's token run boundaries so every segment gets
// its format's color.
func (r *codeEditorRenderer) textObjects() []fyne.CanvasObject {
	editor := r.editor
	style := editor.style
	textFormat := style.Format(FormatText)

	var runs []TokenRun
	if editor.highlighter != nil {
		runs = editor.highlighter.Highlight()
	}

	charWidth := editor.charWidth()

	var objects []fyne.CanvasObject
	runIndex := 0

	for line := 0; line < editor.doc.LineCount(); line++ {
		lineStart := editor.doc.LineStart(line)
		lineText := []rune(editor.doc.Line(line))
		lineEnd := lineStart + len(lineText)
		y, _ := editor.lineBoundingRect(line)

		for runIndex < len(runs) && runs[runIndex].End <= lineStart {
			runIndex++
		}

		pos := lineStart
		idx := runIndex
		for pos < lineEnd {
			segmentEnd := lineEnd
			format := textFormat

			if idx < len(runs) {
				run := runs[idx]
				if run.Start > pos {
					segmentEnd = min(run.Start, lineEnd)
				} else {
					segmentEnd = min(run.End, lineEnd)
					format = style.Format(run.FormatName)
					if run.End <= segmentEnd {
						idx++
					}
				}
			}

			segment := string(lineText[pos-lineStart : segmentEnd-lineStart])
			text := canvas.NewText(segment, format.foregroundOr(textFormat.Foreground))
			text.TextStyle = fyne.TextStyle{Monospace: true}
			text.TextSize = editor.fontSize
			text.Move(fyne.NewPos(float32(pos-lineStart)*charWidth, y))
			objects = append(objects, text)

			pos = segmentEnd
		}
	}

	return objects
}

// contentSize returns the full painted size of the document.
func (r *codeEditorRenderer) contentSize() fyne.Size {
	editor := r.editor

	longest := 0
	for line := 0; line < editor.doc.LineCount(); line++ {
		if l := len([]rune(editor.doc.Line(line))); l > longest {
			longest = l
		}
	}

	width := float32(longest)*editor.charWidth() + editor.charWidth()
	height := float32(editor.doc.LineCount()) * editor.lineHeight()

	if width < editor.viewportSize.Width {
		width = editor.viewportSize.Width
	}
	if height < editor.viewportSize.Height {
		height = editor.viewportSize.Height
	}

	return fyne.NewSize(width, height)
}
