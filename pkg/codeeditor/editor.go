package codeeditor

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// CodeEditor is a source-code editing widget: a text area with a line
// number area, current-line highlighting, matching-delimiter highlighting,
// auto-indentation, auto-closing of bracket and quote pairs and
// tab-to-spaces replacement.
//
// The editor owns its document and cursor; style and highlighter are
// collaborators attached by the embedding application. All methods must
// be called from the Fyne event thread.
type CodeEditor struct {
	widget.BaseWidget

	doc    *Document
	cursor int

	style       *SyntaxStyle
	highlighter *SyntaxHighlighter
	lineNumbers *LineNumberArea

	autoIndent   bool
	autoPairs    bool
	replaceTab   bool
	tabReplace   string
	tabStopWidth int

	readOnly bool
	fontSize float32

	scrollOffset fyne.Position
	viewportSize fyne.Size

	selections []ExtraSelection

	focused bool

	onChanged        func(string)
	onCursorMoved    func()
	onContentChanged func()
	onScrolled       func()
}

// ExtraSelection is a highlighted region rendered on top of normal text
// without altering the document. FullWidth selections paint the whole
// line regardless of the range's horizontal extent.
type ExtraSelection struct {
	Start     int
	End       int
	Format    Format
	FullWidth bool
}

// NewCodeEditor creates a code editor with an empty document, the default
// style and all editing conveniences enabled.
func NewCodeEditor() *CodeEditor {
	e := &CodeEditor{
		doc:          NewDocument(""),
		autoIndent:   true,
		autoPairs:    true,
		replaceTab:   true,
		tabReplace:   strings.Repeat(" ", 4),
		tabStopWidth: 4,
		fontSize:     13,
	}
	e.ExtendBaseWidget(e)

	e.lineNumbers = newLineNumberArea(e)

	e.doc.OnChanged(e.contentChanged)

	e.SetSyntaxStyle(DefaultStyle())
	return e
}

// CreateRenderer creates the widget renderer.
func (e *CodeEditor) CreateRenderer() fyne.WidgetRenderer {
	return newCodeEditorRenderer(e)
}

// Document returns the editor's document.
func (e *CodeEditor) Document() *Document {
	return e.doc
}

// SetText replaces the document content and moves the cursor to the
// start.
func (e *CodeEditor) SetText(text string) {
	e.doc.SetText(text)
	e.setCursor(0)
}

// Text returns the document content.
func (e *CodeEditor) Text() string {
	return e.doc.Text()
}

// SetHighlighter attaches (or, with nil, detaches) the syntax
// highlighter, forwarding the document and style references to it.
func (e *CodeEditor) SetHighlighter(h *SyntaxHighlighter) {
	e.highlighter = h

	if e.highlighter != nil {
		e.highlighter.SetSyntaxStyle(e.style)
		e.highlighter.SetDocument(e.doc)
	}
	e.Refresh()
}

// Highlighter returns the attached highlighter, or nil.
func (e *CodeEditor) Highlighter() *SyntaxHighlighter {
	return e.highlighter
}

// SetSyntaxStyle attaches the style collaborator and restyles the line
// number area and the highlighter.
func (e *CodeEditor) SetSyntaxStyle(style *SyntaxStyle) {
	e.style = style

	e.lineNumbers.setSyntaxStyle(style)

	if e.highlighter != nil {
		e.highlighter.SetSyntaxStyle(style)
	}

	e.updateExtraSelections()
	e.Refresh()
}

// SyntaxStyle returns the attached style, or nil.
func (e *CodeEditor) SyntaxStyle() *SyntaxStyle {
	return e.style
}

// SetAutoIndent enables or disables auto-indentation on newline.
func (e *CodeEditor) SetAutoIndent(enabled bool) {
	e.autoIndent = enabled
}

// AutoIndent reports whether auto-indentation is enabled.
func (e *CodeEditor) AutoIndent() bool {
	return e.autoIndent
}

// SetAutoPairs enables or disables auto-closing of delimiter pairs.
func (e *CodeEditor) SetAutoPairs(enabled bool) {
	e.autoPairs = enabled
}

// AutoPairs reports whether auto-closing is enabled.
func (e *CodeEditor) AutoPairs() bool {
	return e.autoPairs
}

// SetTabReplace enables or disables replacing typed tabs with spaces.
func (e *CodeEditor) SetTabReplace(enabled bool) {
	e.replaceTab = enabled
}

// TabReplace reports whether tab replacement is enabled.
func (e *CodeEditor) TabReplace() bool {
	return e.replaceTab
}

// SetTabReplaceSize sets how many spaces replace a typed tab.
func (e *CodeEditor) SetTabReplaceSize(size int) {
	if size < 0 {
		size = 0
	}
	e.tabReplace = strings.Repeat(" ", size)
}

// TabReplaceSize returns the number of spaces replacing a typed tab.
func (e *CodeEditor) TabReplaceSize() int {
	return len(e.tabReplace)
}

// SetTabStopWidth sets the column width of a literal tab character, used
// when measuring the indentation of a line.
func (e *CodeEditor) SetTabStopWidth(columns int) {
	if columns < 1 {
		columns = 1
	}
	e.tabStopWidth = columns
}

// TabStopWidth returns the column width of a literal tab character.
func (e *CodeEditor) TabStopWidth() int {
	return e.tabStopWidth
}

// SetReadOnly switches the editor between editing and viewing. Read-only
// editors do not paint a current-line highlight.
func (e *CodeEditor) SetReadOnly(readOnly bool) {
	e.readOnly = readOnly
	e.updateExtraSelections()
	e.Refresh()
}

// ReadOnly reports whether the editor rejects edits.
func (e *CodeEditor) ReadOnly() bool {
	return e.readOnly
}

// SetFontSize sets the font size used by the text area and the line
// number area.
func (e *CodeEditor) SetFontSize(size float32) {
	if size <= 0 {
		return
	}
	e.fontSize = size
	e.Refresh()
}

// FontSize returns the current font size.
func (e *CodeEditor) FontSize() float32 {
	return e.fontSize
}

// SetOnChanged sets the callback invoked with the new content after
// every edit.
func (e *CodeEditor) SetOnChanged(fn func(string)) {
	e.onChanged = fn
}

// SetOnCursorMoved sets the callback invoked after every cursor
// movement.
func (e *CodeEditor) SetOnCursorMoved(fn func()) {
	e.onCursorMoved = fn
}

// SetOnContentChanged sets the callback invoked after every content
// mutation.
func (e *CodeEditor) SetOnContentChanged(fn func()) {
	e.onContentChanged = fn
}

// SetOnScrolled sets the callback invoked after the viewport scrolls.
func (e *CodeEditor) SetOnScrolled(fn func()) {
	e.onScrolled = fn
}

// CursorPosition returns the cursor position in the document.
func (e *CodeEditor) CursorPosition() int {
	return e.cursor
}

// SetCursorPosition moves the cursor to the given document position,
// clamped to the document.
func (e *CodeEditor) SetCursorPosition(pos int) {
	e.setCursor(pos)
}

// CurrentLine returns the zero-based line the cursor is on.
func (e *CodeEditor) CurrentLine() int {
	return e.doc.LineAt(e.cursor)
}

// CurrentColumn returns the zero-based column the cursor is on.
func (e *CodeEditor) CurrentColumn() int {
	return e.doc.ColumnAt(e.cursor)
}

// ExtraSelections returns the highlight regions currently in effect:
// the current-line highlight followed by the matching-delimiter
// highlights, when present. The returned slice is a copy; cursor
// movement does not mutate it.
func (e *CodeEditor) ExtraSelections() []ExtraSelection {
	out := make([]ExtraSelection, len(e.selections))
	copy(out, e.selections)
	return out
}

// LineNumberArea returns the gutter widget so an embedding layout can
// place it independently.
func (e *CodeEditor) LineNumberArea() *LineNumberArea {
	return e.lineNumbers
}

// charUnderCursor returns the character at the cursor plus the given
// offset, or the zero rune when out of range.
func (e *CodeEditor) charUnderCursor(offset int) rune {
	return e.doc.CharacterAt(e.cursor + offset)
}

// insertText inserts text at the cursor and advances the cursor past it.
func (e *CodeEditor) insertText(text string) {
	e.doc.Insert(e.cursor, text)
	e.setCursor(e.cursor + len([]rune(text)))
}

// deletePreviousChar removes the character before the cursor.
func (e *CodeEditor) deletePreviousChar() {
	if e.cursor == 0 {
		return
	}
	e.doc.Delete(e.cursor-1, e.cursor)
	e.setCursor(e.cursor - 1)
}

// deleteNextChar removes the character under the cursor.
func (e *CodeEditor) deleteNextChar() {
	if e.cursor >= e.doc.CharacterCount() {
		return
	}
	e.doc.Delete(e.cursor, e.cursor+1)
	e.updateExtraSelections()
	e.Refresh()
}

// setCursor clamps and moves the cursor, then recomputes the highlight
// regions and notifies the host.
func (e *CodeEditor) setCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > e.doc.CharacterCount() {
		pos = e.doc.CharacterCount()
	}
	e.cursor = pos

	e.updateExtraSelections()
	if e.onCursorMoved != nil {
		e.onCursorMoved()
	}
	e.Refresh()
}

// contentChanged runs after every document mutation: the line number
// area recomputes its reserved width and the host callbacks fire.
func (e *CodeEditor) contentChanged() {
	e.lineNumbers.updateWidth()

	if e.onContentChanged != nil {
		e.onContentChanged()
	}
	if e.onChanged != nil {
		e.onChanged(e.doc.Text())
	}
}

// scrolled records the new scroll offset, repaints the line number area
// and notifies the host.
func (e *CodeEditor) scrolled(offset fyne.Position) {
	e.scrollOffset = offset
	e.lineNumbers.Refresh()

	if e.onScrolled != nil {
		e.onScrolled()
	}
}

// FocusGained implements fyne.Focusable.
func (e *CodeEditor) FocusGained() {
	e.focused = true
	e.Refresh()
}

// FocusLost implements fyne.Focusable.
func (e *CodeEditor) FocusLost() {
	e.focused = false
	e.Refresh()
}

// Tapped moves the cursor to the tapped location and requests focus.
func (e *CodeEditor) Tapped(ev *fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(e); c != nil {
		c.Focus(e)
	}
	e.setCursor(e.positionToCursor(ev.Position))
}

// positionToCursor converts a widget-local point to a document position
// using the monospace cell metrics the renderer paints with.
func (e *CodeEditor) positionToCursor(pos fyne.Position) int {
	line := int((pos.Y + e.scrollOffset.Y) / e.lineHeight())
	if line < 0 {
		line = 0
	}
	if line >= e.doc.LineCount() {
		line = e.doc.LineCount() - 1
	}

	x := pos.X - e.lineNumbers.widthHint() + e.scrollOffset.X
	column := int(x / e.charWidth())
	if column < 0 {
		column = 0
	}
	lineText := []rune(e.doc.Line(line))
	if column > len(lineText) {
		column = len(lineText)
	}

	return e.doc.LineStart(line) + column
}

// lineHeight returns the painted height of one text line.
func (e *CodeEditor) lineHeight() float32 {
	return e.fontSize + 4
}

// charWidth returns the approximate monospace advance of one character.
func (e *CodeEditor) charWidth() float32 {
	return e.fontSize * 0.6
}

// lineBoundingRect returns the bounding box of a line in content
// coordinates, before scroll translation.
func (e *CodeEditor) lineBoundingRect(line int) (y, height float32) {
	return float32(line) * e.lineHeight(), e.lineHeight()
}

// firstVisibleLine walks the document lines from the start and returns
// the first whose bounding box, translated by the scroll offset, falls
// inside the viewport.
//
// A direct division by the uniform line height would do; the walk is kept
// so the answer stays correct if line boxes ever stop being uniform.
func (e *CodeEditor) firstVisibleLine() int {
	for i := 0; i < e.doc.LineCount(); i++ {
		y, height := e.lineBoundingRect(i)
		top := y - e.scrollOffset.Y

		if top+height > 0 && top < e.viewportSize.Height {
			return i
		}
	}
	return 0
}
