package codeeditor

import (
	"log"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// TokenRun is a colored region of the document produced by the
// highlighter, in rune positions.
type TokenRun struct {
	Start      int
	End        int
	FormatName string
}

// SyntaxHighlighter tokenizes the editor document with chroma and maps
// token categories onto the syntax style's named formats. It is attached
// to an editor with SetHighlighter, which forwards the document and style
// references.
type SyntaxHighlighter struct {
	language string
	lexer    chroma.Lexer
	style    *SyntaxStyle
	doc      *Document
}

// NewSyntaxHighlighter creates a highlighter for the given language.
// Unknown languages fall back to chroma's plain-text lexer.
func NewSyntaxHighlighter(language string) *SyntaxHighlighter {
	h := &SyntaxHighlighter{}
	h.SetLanguage(language)
	return h
}

// SetLanguage switches the lexer used for tokenization.
func (h *SyntaxHighlighter) SetLanguage(language string) {
	h.language = language
	h.lexer = lexers.Get(language)
	if h.lexer == nil {
		h.lexer = lexers.Fallback
	}
	h.lexer = chroma.Coalesce(h.lexer)
}

// Language returns the current language.
func (h *SyntaxHighlighter) Language() string {
	return h.language
}

// SetDocument attaches the document to highlight.
func (h *SyntaxHighlighter) SetDocument(doc *Document) {
	h.doc = doc
}

// SetSyntaxStyle attaches the style used to resolve token formats.
func (h *SyntaxHighlighter) SetSyntaxStyle(style *SyntaxStyle) {
	h.style = style
}

// Highlight tokenizes the attached document and returns the colored runs.
// Without a document there is nothing to do; tokenization errors degrade
// to no runs so the editor paints plain text.
func (h *SyntaxHighlighter) Highlight() []TokenRun {
	if h.doc == nil {
		return nil
	}

	text := h.doc.Text()
	if text == "" {
		return nil
	}

	iterator, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		log.Printf("syntax highlighting failed: %v", err)
		return nil
	}

	var runs []TokenRun
	pos := 0
	for token := iterator(); token != chroma.EOF; token = iterator() {
		length := utf8.RuneCountInString(token.Value)
		name := formatNameForToken(token.Type)
		if name != "" {
			runs = append(runs, TokenRun{
				Start:      pos,
				End:        pos + length,
				FormatName: name,
			})
		}
		pos += length
	}

	return runs
}

// formatNameForToken maps chroma token categories onto style format
// names. Unmapped categories return "" and inherit the text format.
func formatNameForToken(tokenType chroma.TokenType) string {
	switch {
	case tokenType == chroma.NameClass || tokenType == chroma.KeywordType:
		return FormatType
	case tokenType.InCategory(chroma.Keyword):
		return FormatKeyword
	case tokenType.InSubCategory(chroma.LiteralString):
		return FormatString
	case tokenType.InCategory(chroma.Comment):
		return FormatComment
	case tokenType.InSubCategory(chroma.LiteralNumber):
		return FormatNumber
	case tokenType == chroma.NameFunction:
		return FormatFunction
	case tokenType.InCategory(chroma.Operator):
		return FormatOperator
	case tokenType.InCategory(chroma.Error):
		return FormatError
	default:
		return ""
	}
}
