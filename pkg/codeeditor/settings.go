package codeeditor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EditorSettings is the persisted configuration for the code editor.
type EditorSettings struct {
	// Appearance
	Style    string  `json:"style"`
	FontSize float32 `json:"fontSize"`

	// Editor behavior
	TabSize           int  `json:"tabSize"`
	ReplaceTabs       bool `json:"replaceTabs"`
	AutoIndent        bool `json:"autoIndent"`
	AutoCloseBrackets bool `json:"autoCloseBrackets"`
	ShowLineNumbers   bool `json:"showLineNumbers"`

	// Language-specific settings
	LanguageSettings map[string]*LanguageConfig `json:"languageSettings"`
}

// LanguageConfig is a per-language override of the editing behavior.
type LanguageConfig struct {
	TabSize     int    `json:"tabSize"`
	ReplaceTabs bool   `json:"replaceTabs"`
	FilePattern string `json:"filePattern"`
}

// DefaultSettings returns the default editor settings.
func DefaultSettings() *EditorSettings {
	return &EditorSettings{
		Style:             "Default Dark",
		FontSize:          13,
		TabSize:           4,
		ReplaceTabs:       true,
		AutoIndent:        true,
		AutoCloseBrackets: true,
		ShowLineNumbers:   true,
		LanguageSettings: map[string]*LanguageConfig{
			"go": {
				TabSize:     8,
				ReplaceTabs: false, // Go uses tabs
				FilePattern: "*.go",
			},
			"python": {
				TabSize:     4,
				ReplaceTabs: true,
				FilePattern: "*.py",
			},
			"javascript": {
				TabSize:     2,
				ReplaceTabs: true,
				FilePattern: "*.js",
			},
			"json": {
				TabSize:     2,
				ReplaceTabs: true,
				FilePattern: "*.json",
			},
			"yaml": {
				TabSize:     2,
				ReplaceTabs: true,
				FilePattern: "*.yml,*.yaml",
			},
		},
	}
}

// SettingsManager loads, saves and applies editor settings.
type SettingsManager struct {
	settings     *EditorSettings
	settingsPath string
}

// NewSettingsManager creates a manager storing the settings at the given
// path. A missing or unreadable file yields the defaults.
func NewSettingsManager(path string) *SettingsManager {
	sm := &SettingsManager{
		settings:     DefaultSettings(),
		settingsPath: path,
	}

	if err := sm.Load(); err != nil {
		sm.settings = DefaultSettings()
	}

	return sm
}

// Load reads the settings file.
func (sm *SettingsManager) Load() error {
	data, err := os.ReadFile(sm.settingsPath)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %v", err)
	}

	var settings EditorSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("failed to parse settings file: %v", err)
	}

	sm.settings = &settings
	return nil
}

// Save writes the settings file, creating its directory when needed.
func (sm *SettingsManager) Save() error {
	settingsDir := filepath.Dir(sm.settingsPath)
	if err := os.MkdirAll(settingsDir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %v", err)
	}

	data, err := json.MarshalIndent(sm.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %v", err)
	}

	if err := os.WriteFile(sm.settingsPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %v", err)
	}

	return nil
}

// Settings returns the current settings.
func (sm *SettingsManager) Settings() *EditorSettings {
	return sm.settings
}

// UpdateSettings replaces the settings and saves them.
func (sm *SettingsManager) UpdateSettings(settings *EditorSettings) error {
	sm.settings = settings
	return sm.Save()
}

// LanguageConfig returns the configuration for a language, falling back
// to the general settings for unknown languages.
func (sm *SettingsManager) LanguageConfig(language string) *LanguageConfig {
	if config, exists := sm.settings.LanguageSettings[language]; exists {
		return config
	}

	return &LanguageConfig{
		TabSize:     sm.settings.TabSize,
		ReplaceTabs: sm.settings.ReplaceTabs,
		FilePattern: "*",
	}
}

// ApplyTo configures an editor from the settings, honoring the
// language override of its highlighter when one is attached.
func (sm *SettingsManager) ApplyTo(editor *CodeEditor) {
	settings := sm.settings

	if style := StyleByName(settings.Style); style != nil {
		editor.SetSyntaxStyle(style)
	}

	editor.SetFontSize(settings.FontSize)
	editor.SetTabReplaceSize(settings.TabSize)
	editor.SetTabStopWidth(settings.TabSize)
	editor.SetTabReplace(settings.ReplaceTabs)
	editor.SetAutoIndent(settings.AutoIndent)
	editor.SetAutoPairs(settings.AutoCloseBrackets)

	if editor.Highlighter() != nil {
		langConfig := sm.LanguageConfig(editor.Highlighter().Language())
		editor.SetTabReplaceSize(langConfig.TabSize)
		editor.SetTabStopWidth(langConfig.TabSize)
		editor.SetTabReplace(langConfig.ReplaceTabs)
	}
}

// Validate checks the settings for out-of-range values and returns a
// description of every problem found.
func (sm *SettingsManager) Validate() []string {
	var problems []string

	if sm.settings.FontSize < 8 || sm.settings.FontSize > 48 {
		problems = append(problems, "font size must be between 8 and 48")
	}

	if sm.settings.TabSize < 1 || sm.settings.TabSize > 16 {
		problems = append(problems, "tab size must be between 1 and 16")
	}

	if StyleByName(sm.settings.Style) == nil {
		problems = append(problems, fmt.Sprintf("unknown style: %s", sm.settings.Style))
	}

	return problems
}
