package codeeditor

import "image/color"

// Format describes how a named region of the editor is painted.
type Format struct {
	Foreground color.Color
	Background color.Color
}

// SyntaxStyle is the style collaborator of the editor: a named set of
// formats covering the editor chrome ("Text", "Selection", "CurrentLine",
// "Parenthesis", "LineNumber", "CurrentLineNumber") and the syntax token
// kinds produced by the highlighter.
type SyntaxStyle struct {
	Name    string
	formats map[string]Format
}

// NewSyntaxStyle creates an empty style with the given name.
func NewSyntaxStyle(name string) *SyntaxStyle {
	return &SyntaxStyle{
		Name:    name,
		formats: make(map[string]Format),
	}
}

// Format returns the format registered under the given name. Unknown
// names produce the zero format, which painters treat as "inherit".
func (s *SyntaxStyle) Format(name string) Format {
	if s == nil {
		return Format{}
	}
	return s.formats[name]
}

// SetFormat registers or replaces a named format.
func (s *SyntaxStyle) SetFormat(name string, format Format) {
	if s.formats == nil {
		s.formats = make(map[string]Format)
	}
	s.formats[name] = format
}

// FormatNames returns the names the style defines, in no specific order.
func (s *SyntaxStyle) FormatNames() []string {
	names := make([]string, 0, len(s.formats))
	for name := range s.formats {
		names = append(names, name)
	}
	return names
}

// foregroundOr returns the format's foreground, or fallback when the
// format does not define one.
func (f Format) foregroundOr(fallback color.Color) color.Color {
	if f.Foreground == nil {
		return fallback
	}
	return f.Foreground
}

// backgroundOr returns the format's background, or fallback when the
// format does not define one.
func (f Format) backgroundOr(fallback color.Color) color.Color {
	if f.Background == nil {
		return fallback
	}
	return f.Background
}
