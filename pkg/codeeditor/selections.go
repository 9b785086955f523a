package codeeditor

// updateExtraSelections recomputes the highlight regions after a cursor
// movement: the current-line highlight first, then the pair of
// matching-delimiter highlights.
func (e *CodeEditor) updateExtraSelections() {
	e.selections = e.selections[:0]

	e.highlightCurrentLine()
	e.highlightParenthesis()
}

// highlightCurrentLine adds a full-width highlight on the cursor's line.
// Read-only editors have no editing focus to mark, so nothing is added.
func (e *CodeEditor) highlightCurrentLine() {
	if e.readOnly {
		return
	}

	line := e.CurrentLine()
	start := e.doc.LineStart(line)
	end := start + len([]rune(e.doc.Line(line)))

	e.selections = append(e.selections, ExtraSelection{
		Start:     start,
		End:       end,
		Format:    e.style.Format(FormatCurrentLine),
		FullWidth: true,
	})
}

// highlightParenthesis adds highlights on the delimiter at the cursor
// and on its counterpart when the balance scan finds one. Absent style
// or unmatched delimiters degrade to no highlight.
func (e *CodeEditor) highlightParenthesis() {
	if e.style == nil {
		return
	}

	origin, match, ok := matchDelimiter(e.doc, e.cursor)
	if !ok {
		return
	}

	format := e.style.Format(FormatParenthesis)

	e.selections = append(e.selections,
		ExtraSelection{Start: match, End: match + 1, Format: format},
		ExtraSelection{Start: origin, End: origin + 1, Format: format},
	)
}
