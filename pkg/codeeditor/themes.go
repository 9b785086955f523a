package codeeditor

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strconv"
)

// Format names used by the editor chrome.
const (
	FormatText              = "Text"
	FormatSelection         = "Selection"
	FormatCurrentLine       = "CurrentLine"
	FormatParenthesis       = "Parenthesis"
	FormatLineNumber        = "LineNumber"
	FormatCurrentLineNumber = "CurrentLineNumber"
)

// Format names used for syntax tokens.
const (
	FormatKeyword  = "Keyword"
	FormatString   = "String"
	FormatComment  = "Comment"
	FormatNumber   = "Number"
	FormatFunction = "Function"
	FormatOperator = "Operator"
	FormatType     = "Type"
	FormatError    = "Error"
)

// DefaultStyle returns the default dark style.
func DefaultStyle() *SyntaxStyle {
	s := NewSyntaxStyle("Default Dark")
	s.SetFormat(FormatText, Format{
		Foreground: color.NRGBA{R: 212, G: 212, B: 212, A: 255},
		Background: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
	})
	s.SetFormat(FormatSelection, Format{
		Background: color.NRGBA{R: 38, G: 79, B: 120, A: 255},
	})
	s.SetFormat(FormatCurrentLine, Format{
		Background: color.NRGBA{R: 40, G: 40, B: 40, A: 255},
	})
	s.SetFormat(FormatParenthesis, Format{
		Foreground: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Background: color.NRGBA{R: 60, G: 90, B: 130, A: 255},
	})
	s.SetFormat(FormatLineNumber, Format{
		Foreground: color.NRGBA{R: 133, G: 133, B: 133, A: 255},
		Background: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
	})
	s.SetFormat(FormatCurrentLineNumber, Format{
		Foreground: color.NRGBA{R: 212, G: 212, B: 212, A: 255},
	})
	s.SetFormat(FormatKeyword, Format{Foreground: color.NRGBA{R: 86, G: 156, B: 214, A: 255}})
	s.SetFormat(FormatString, Format{Foreground: color.NRGBA{R: 206, G: 145, B: 120, A: 255}})
	s.SetFormat(FormatComment, Format{Foreground: color.NRGBA{R: 106, G: 153, B: 85, A: 255}})
	s.SetFormat(FormatNumber, Format{Foreground: color.NRGBA{R: 181, G: 206, B: 168, A: 255}})
	s.SetFormat(FormatFunction, Format{Foreground: color.NRGBA{R: 220, G: 220, B: 170, A: 255}})
	s.SetFormat(FormatOperator, Format{Foreground: color.NRGBA{R: 212, G: 212, B: 212, A: 255}})
	s.SetFormat(FormatType, Format{Foreground: color.NRGBA{R: 78, G: 201, B: 176, A: 255}})
	s.SetFormat(FormatError, Format{Foreground: color.NRGBA{R: 244, G: 71, B: 71, A: 255}})
	return s
}

// LightStyle returns a light style.
func LightStyle() *SyntaxStyle {
	s := NewSyntaxStyle("Light")
	s.SetFormat(FormatText, Format{
		Foreground: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	})
	s.SetFormat(FormatSelection, Format{
		Background: color.NRGBA{R: 173, G: 214, B: 255, A: 255},
	})
	s.SetFormat(FormatCurrentLine, Format{
		Background: color.NRGBA{R: 245, G: 245, B: 245, A: 255},
	})
	s.SetFormat(FormatParenthesis, Format{
		Foreground: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Background: color.NRGBA{R: 180, G: 210, B: 250, A: 255},
	})
	s.SetFormat(FormatLineNumber, Format{
		Foreground: color.NRGBA{R: 149, G: 149, B: 149, A: 255},
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	})
	s.SetFormat(FormatCurrentLineNumber, Format{
		Foreground: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
	})
	s.SetFormat(FormatKeyword, Format{Foreground: color.NRGBA{R: 0, G: 0, B: 255, A: 255}})
	s.SetFormat(FormatString, Format{Foreground: color.NRGBA{R: 163, G: 21, B: 21, A: 255}})
	s.SetFormat(FormatComment, Format{Foreground: color.NRGBA{R: 0, G: 128, B: 0, A: 255}})
	s.SetFormat(FormatNumber, Format{Foreground: color.NRGBA{R: 9, G: 134, B: 88, A: 255}})
	s.SetFormat(FormatFunction, Format{Foreground: color.NRGBA{R: 121, G: 94, B: 38, A: 255}})
	s.SetFormat(FormatOperator, Format{Foreground: color.NRGBA{R: 0, G: 0, B: 0, A: 255}})
	s.SetFormat(FormatType, Format{Foreground: color.NRGBA{R: 43, G: 145, B: 175, A: 255}})
	s.SetFormat(FormatError, Format{Foreground: color.NRGBA{R: 255, G: 0, B: 0, A: 255}})
	return s
}

// MonokaiStyle returns a Monokai style.
func MonokaiStyle() *SyntaxStyle {
	s := NewSyntaxStyle("Monokai")
	s.SetFormat(FormatText, Format{
		Foreground: color.NRGBA{R: 248, G: 248, B: 242, A: 255},
		Background: color.NRGBA{R: 39, G: 40, B: 34, A: 255},
	})
	s.SetFormat(FormatSelection, Format{
		Background: color.NRGBA{R: 73, G: 72, B: 62, A: 255},
	})
	s.SetFormat(FormatCurrentLine, Format{
		Background: color.NRGBA{R: 49, G: 50, B: 44, A: 255},
	})
	s.SetFormat(FormatParenthesis, Format{
		Foreground: color.NRGBA{R: 248, G: 248, B: 242, A: 255},
		Background: color.NRGBA{R: 90, G: 90, B: 75, A: 255},
	})
	s.SetFormat(FormatLineNumber, Format{
		Foreground: color.NRGBA{R: 144, G: 144, B: 144, A: 255},
		Background: color.NRGBA{R: 39, G: 40, B: 34, A: 255},
	})
	s.SetFormat(FormatCurrentLineNumber, Format{
		Foreground: color.NRGBA{R: 248, G: 248, B: 242, A: 255},
	})
	s.SetFormat(FormatKeyword, Format{Foreground: color.NRGBA{R: 249, G: 38, B: 114, A: 255}})
	s.SetFormat(FormatString, Format{Foreground: color.NRGBA{R: 230, G: 219, B: 116, A: 255}})
	s.SetFormat(FormatComment, Format{Foreground: color.NRGBA{R: 117, G: 113, B: 94, A: 255}})
	s.SetFormat(FormatNumber, Format{Foreground: color.NRGBA{R: 174, G: 129, B: 255, A: 255}})
	s.SetFormat(FormatFunction, Format{Foreground: color.NRGBA{R: 166, G: 226, B: 46, A: 255}})
	s.SetFormat(FormatOperator, Format{Foreground: color.NRGBA{R: 249, G: 38, B: 114, A: 255}})
	s.SetFormat(FormatType, Format{Foreground: color.NRGBA{R: 102, G: 217, B: 239, A: 255}})
	s.SetFormat(FormatError, Format{Foreground: color.NRGBA{R: 244, G: 71, B: 71, A: 255}})
	return s
}

// BuiltinStyles returns all built-in styles keyed by a short identifier.
func BuiltinStyles() map[string]*SyntaxStyle {
	return map[string]*SyntaxStyle{
		"default": DefaultStyle(),
		"light":   LightStyle(),
		"monokai": MonokaiStyle(),
	}
}

// StyleNames returns the display names of the built-in styles.
func StyleNames() []string {
	return []string{
		DefaultStyle().Name,
		LightStyle().Name,
		MonokaiStyle().Name,
	}
}

// StyleByName returns the built-in style with the given display name, or
// nil when no style matches.
func StyleByName(name string) *SyntaxStyle {
	for _, s := range BuiltinStyles() {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// styleDefinition is the JSON shape of a style file. Each format maps a
// name to optional foreground and background hex colors.
type styleDefinition struct {
	Name    string                      `json:"name"`
	Formats map[string]formatDefinition `json:"formats"`
}

type formatDefinition struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
}

// LoadStyleFromJSON loads a style from a JSON file. Formats the file does
// not define fall back to the default style.
func LoadStyleFromJSON(path string) (*SyntaxStyle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style file: %v", err)
	}

	var def styleDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse style file: %v", err)
	}

	style := NewSyntaxStyle(def.Name)
	for name, fd := range def.Formats {
		format := Format{}
		if fd.Foreground != "" {
			format.Foreground = parseHexColor(fd.Foreground)
		}
		if fd.Background != "" {
			format.Background = parseHexColor(fd.Background)
		}
		style.SetFormat(name, format)
	}

	// Fill in anything the file left out so painting never has to guess.
	for _, name := range DefaultStyle().FormatNames() {
		if _, exists := style.formats[name]; !exists {
			style.SetFormat(name, DefaultStyle().Format(name))
		}
	}

	return style, nil
}

// SaveStyleToJSON writes a style to a JSON file.
func SaveStyleToJSON(style *SyntaxStyle, path string) error {
	def := styleDefinition{
		Name:    style.Name,
		Formats: make(map[string]formatDefinition),
	}

	for name, format := range style.formats {
		fd := formatDefinition{}
		if format.Foreground != nil {
			fd.Foreground = colorToHex(format.Foreground)
		}
		if format.Background != nil {
			fd.Background = colorToHex(format.Background)
		}
		def.Formats[name] = fd
	}

	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal style: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write style file: %v", err)
	}

	return nil
}

// parseHexColor converts "#rrggbb" or "#rgb" (with or without the "#")
// to a color. Malformed input yields opaque black.
func parseHexColor(hex string) color.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return color.NRGBA{A: 255}
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{A: 255}
	}

	return color.NRGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 255,
	}
}

// colorToHex converts a color to "#rrggbb".
func colorToHex(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
