package codeeditor

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const lineNumberPadding = 8

// LineNumberArea is the gutter beside the text area. Its width follows
// the digit count of the document's line count and is reserved as a left
// margin of the editor viewport; it repaints on scroll and emphasizes
// the cursor's line.
type LineNumberArea struct {
	widget.BaseWidget

	editor *CodeEditor
	style  *SyntaxStyle
}

func newLineNumberArea(editor *CodeEditor) *LineNumberArea {
	a := &LineNumberArea{editor: editor}
	a.ExtendBaseWidget(a)
	return a
}

// setSyntaxStyle attaches the style the numbers are painted with.
func (a *LineNumberArea) setSyntaxStyle(style *SyntaxStyle) {
	a.style = style
	a.Refresh()
}

// widthHint returns the width to reserve for the area: enough monospace
// cells for the largest line number plus padding.
func (a *LineNumberArea) widthHint() float32 {
	digits := 1
	for count := a.editor.doc.LineCount(); count >= 10; count /= 10 {
		digits++
	}
	return float32(digits)*a.editor.charWidth() + lineNumberPadding
}

// MinSize implements fyne.Widget.
func (a *LineNumberArea) MinSize() fyne.Size {
	return fyne.NewSize(a.widthHint(), 0)
}

// updateWidth re-reserves the viewport margin after the line count
// changed.
func (a *LineNumberArea) updateWidth() {
	a.Refresh()
	if a.editor != nil {
		a.editor.Refresh()
	}
}

// CreateRenderer implements fyne.Widget.
func (a *LineNumberArea) CreateRenderer() fyne.WidgetRenderer {
	return &lineNumberAreaRenderer{area: a, background: canvas.NewRectangle(nil)}
}

type lineNumberAreaRenderer struct {
	area       *LineNumberArea
	background *canvas.Rectangle
	numbers    []fyne.CanvasObject
	size       fyne.Size
}

func (r *lineNumberAreaRenderer) Layout(size fyne.Size) {
	r.size = size
	r.background.Resize(size)
	r.rebuild()
}

func (r *lineNumberAreaRenderer) MinSize() fyne.Size {
	return r.area.MinSize()
}

func (r *lineNumberAreaRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.area)
}

func (r *lineNumberAreaRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.numbers)+1)
	objects = append(objects, r.background)
	objects = append(objects, r.numbers...)
	return objects
}

func (r *lineNumberAreaRenderer) Destroy() {}

// rebuild repaints the visible line numbers, starting at the first line
// whose box intersects the viewport.
func (r *lineNumberAreaRenderer) rebuild() {
	editor := r.area.editor
	style := r.area.style

	numberFormat := style.Format(FormatLineNumber)
	currentFormat := style.Format(FormatCurrentLineNumber)
	textFormat := style.Format(FormatText)

	r.background.FillColor = numberFormat.backgroundOr(textFormat.Background)

	r.numbers = r.numbers[:0]

	lineHeight := editor.lineHeight()
	currentLine := editor.CurrentLine()

	for line := editor.firstVisibleLine(); line < editor.doc.LineCount(); line++ {
		y, _ := editor.lineBoundingRect(line)
		y -= editor.scrollOffset.Y
		if y > r.size.Height {
			break
		}

		format := numberFormat
		if line == currentLine {
			format = currentFormat
		}

		number := canvas.NewText(fmt.Sprintf("%d", line+1), format.foregroundOr(textFormat.Foreground))
		number.TextStyle = fyne.TextStyle{Monospace: true}
		number.TextSize = editor.fontSize
		number.Alignment = fyne.TextAlignTrailing
		number.Move(fyne.NewPos(0, y))
		number.Resize(fyne.NewSize(r.size.Width-lineNumberPadding/2, lineHeight))

		r.numbers = append(r.numbers, number)
	}
}
