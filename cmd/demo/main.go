package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sourcepad/sourcepad/internal/filewatch"
	"github.com/sourcepad/sourcepad/internal/recent"
	"github.com/sourcepad/sourcepad/pkg/codeeditor"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const sampleCode = `package main

import (
	"fmt"
	"strings"
)

func main() {
	message := "Hello, World!"
	fmt.Println(message)

	words := strings.Split(message, " ")
	for i, word := range words {
		fmt.Printf("Word %d: %s\n", i, word)
	}

	numbers := []int{1, 2, 3, 4, 5}
	sum := 0
	for _, num := range numbers {
		sum += num
	}
	fmt.Printf("Sum: %d\n", sum)
}
`

func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "sourcepad")
}

func main() {
	myApp := app.New()
	myWindow := myApp.NewWindow("SourcePad Demo")
	myWindow.Resize(fyne.NewSize(1000, 700))

	settings := codeeditor.NewSettingsManager(filepath.Join(configDir(), "settings.json"))
	for _, problem := range settings.Validate() {
		log.Printf("settings: %s", problem)
	}

	recentStore, err := recent.New(filepath.Join(configDir(), "recent.db"))
	if err != nil {
		log.Printf("recent files unavailable: %v", err)
	} else {
		defer recentStore.Close()
	}

	editor := codeeditor.NewCodeEditor()
	editor.SetHighlighter(codeeditor.NewSyntaxHighlighter("go"))
	settings.ApplyTo(editor)
	editor.SetText(sampleCode)

	var currentFile string

	statusLabel := widget.NewLabel("Ln 1, Col 1")
	editor.SetOnCursorMoved(func() {
		statusLabel.SetText(fmt.Sprintf("Ln %d, Col %d",
			editor.CurrentLine()+1, editor.CurrentColumn()+1))
	})

	// Reload the buffer when someone else writes the open file.
	watcher := filewatch.New(func(path string) {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("failed to reload %s: %v", path, err)
			return
		}
		fyne.Do(func() {
			editor.SetText(string(data))
		})
	})
	defer watcher.Stop()

	openFile := func(path string, data []byte) {
		currentFile = path
		editor.SetText(string(data))

		language := languageForFile(path)
		editor.Highlighter().SetLanguage(language)
		settings.ApplyTo(editor)

		if recentStore != nil {
			entry := recent.Entry{Path: path, Language: language}
			if remembered, found, err := recentStore.Lookup(path); err == nil && found {
				entry.CursorPos = remembered.CursorPos
				editor.SetCursorPosition(remembered.CursorPos)
			}
			if err := recentStore.Add(entry); err != nil {
				log.Printf("failed to remember %s: %v", path, err)
			}
			if err := recentStore.Prune(20); err != nil {
				log.Printf("failed to prune recent files: %v", err)
			}
		}

		if err := watcher.Watch(path); err != nil {
			log.Printf("failed to watch %s: %v", path, err)
		}

		myWindow.SetTitle("SourcePad Demo - " + filepath.Base(path))
	}

	openBtn := widget.NewButton("Open", func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, myWindow)
				return
			}
			if reader == nil {
				return
			}
			defer reader.Close()

			path := reader.URI().Path()
			data, err := os.ReadFile(path)
			if err != nil {
				dialog.ShowError(err, myWindow)
				return
			}
			openFile(path, data)
		}, myWindow)
	})

	saveBtn := widget.NewButton("Save", func() {
		if currentFile == "" {
			dialog.ShowInformation("No File", "Open a file before saving", myWindow)
			return
		}
		if err := os.WriteFile(currentFile, []byte(editor.Text()), 0644); err != nil {
			dialog.ShowError(err, myWindow)
			return
		}
		if recentStore != nil {
			recentStore.Add(recent.Entry{
				Path:      currentFile,
				Language:  editor.Highlighter().Language(),
				CursorPos: editor.CursorPosition(),
			})
		}
		log.Printf("saved %s: %d characters", currentFile, len(editor.Text()))
	})

	themeSelect := widget.NewSelect(codeeditor.StyleNames(), func(value string) {
		if style := codeeditor.StyleByName(value); style != nil {
			editor.SetSyntaxStyle(style)
			settings.Settings().Style = value
			if err := settings.Save(); err != nil {
				log.Printf("failed to save settings: %v", err)
			}
		}
	})
	themeSelect.SetSelected(settings.Settings().Style)

	languageSelect := widget.NewSelect([]string{"go", "python", "javascript", "json", "yaml", "bash"}, func(value string) {
		editor.Highlighter().SetLanguage(value)
		settings.ApplyTo(editor)
		editor.Refresh()
	})
	languageSelect.SetSelected("go")

	autoPairCheck := widget.NewCheck("Auto-close brackets", func(on bool) {
		editor.SetAutoPairs(on)
	})
	autoPairCheck.SetChecked(editor.AutoPairs())

	autoIndentCheck := widget.NewCheck("Auto-indent", func(on bool) {
		editor.SetAutoIndent(on)
	})
	autoIndentCheck.SetChecked(editor.AutoIndent())

	tabSpacesCheck := widget.NewCheck("Tabs as spaces", func(on bool) {
		editor.SetTabReplace(on)
	})
	tabSpacesCheck.SetChecked(editor.TabReplace())

	toolbar := container.NewHBox(
		openBtn,
		saveBtn,
		widget.NewSeparator(),
		widget.NewLabel("Theme:"),
		themeSelect,
		widget.NewLabel("Language:"),
		languageSelect,
		widget.NewSeparator(),
		autoPairCheck,
		autoIndentCheck,
		tabSpacesCheck,
	)

	shortcuts := codeeditor.NewKeyboardShortcuts(editor)
	for _, key := range []fyne.KeyName{fyne.KeyD, fyne.KeySlash, fyne.KeyRightBracket, fyne.KeyLeftBracket} {
		myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
			KeyName:  key,
			Modifier: fyne.KeyModifierShortcutDefault,
		}, func(fyne.Shortcut) { shortcuts.Handle(key) })
	}

	content := container.NewBorder(
		toolbar,     // top
		statusLabel, // bottom
		nil,
		nil,
		editor,
	)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

// languageForFile guesses the language from the file extension.
func languageForFile(path string) string {
	switch filepath.Ext(path) {
	case ".go":
		return "go"
	case ".py":
		return "python"
	case ".js":
		return "javascript"
	case ".json":
		return "json"
	case ".yml", ".yaml":
		return "yaml"
	case ".sh":
		return "bash"
	case ".md":
		return "markdown"
	default:
		return "plaintext"
	}
}
