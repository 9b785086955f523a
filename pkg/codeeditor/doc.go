// Package codeeditor provides a source-code editing widget for Fyne
// applications: a text area extended with a line number area,
// current-line and matching-bracket highlighting, auto-indentation,
// auto-closing of bracket and quote pairs and tab-to-spaces replacement.
//
// The widget follows Fyne's standard architecture with separate Widget
// and WidgetRenderer types. Syntax highlighting is delegated to an
// attachable chroma-backed collaborator, and all colors come from a
// named-format style that can be loaded from VS Code style JSON files.
//
// Basic usage:
//
//	editor := codeeditor.NewCodeEditor()
//	editor.SetHighlighter(codeeditor.NewSyntaxHighlighter("go"))
//	editor.SetSyntaxStyle(codeeditor.MonokaiStyle())
//	editor.SetText("package main\n\nfunc main() {\n}\n")
//
// Everything runs on the Fyne event thread; the widget spawns no
// goroutines and reports no errors, degrading to a no-op wherever a
// collaborator is absent.
package codeeditor
