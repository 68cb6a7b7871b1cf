// Package theme defines the theme model and loads theme definition files.
//
// A theme is a named bundle of per-target configuration blocks. Each block
// is optional: an absent block means "do not touch this target", which is
// different from an empty configuration. Themes are persisted as YAML files
// in the themes directory and loaded strictly - unknown keys are rejected
// at this boundary so step generators never see ambiguous shapes.
package theme

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a theme could not be resolved by name.
var ErrNotFound = errors.New("theme not found")

// Theme is the normalized in-memory representation of a theme definition.
// Immutable once loaded; owned by the caller for the duration of one apply.
type Theme struct {
	// Name identifies the theme in listings and backup manifests.
	Name string `yaml:"name"`

	// Description is a short human-readable summary.
	Description string `yaml:"description"`

	// Terminal configures the terminal settings JSON target.
	Terminal *TerminalConfig `yaml:"terminal"`

	// ShellProfile configures the marker-delimited block in the shell
	// profile file.
	ShellProfile *TextBlockConfig `yaml:"shellProfile"`

	// ShellRC configures the marker-delimited block in the shell rc file.
	ShellRC *TextBlockConfig `yaml:"shellRc"`

	// System configures OS-level appearance settings (accent color,
	// wallpaper).
	System *SystemConfig `yaml:"system"`

	// EditorSettings configures the editor settings JSON target.
	EditorSettings *EditorSettingsConfig `yaml:"editorSettings"`

	// ThemeFile configures the editor colorscheme file written verbatim.
	ThemeFile *ThemeFileConfig `yaml:"themeFile"`

	// EditorRC configures the marker-delimited block in the editor rc file.
	EditorRC *TextBlockConfig `yaml:"editorRc"`
}

// TerminalConfig describes changes to the terminal settings document.
type TerminalConfig struct {
	// SettingsPath overrides the default settings JSON location.
	SettingsPath string `yaml:"settingsPath"`

	// Scheme is a named color scheme, upserted into the document's
	// scheme list keyed by its "name" field.
	Scheme map[string]any `yaml:"scheme"`

	// ProfileDefaults are keys merged into the profile defaults object.
	ProfileDefaults map[string]any `yaml:"profileDefaults"`

	// Profiles are patches applied to existing profile entries, matched
	// by "name" or "source".
	Profiles []map[string]any `yaml:"profiles"`
}

// IsEmpty reports whether the configuration carries no changes.
func (c *TerminalConfig) IsEmpty() bool {
	return len(c.Scheme) == 0 && len(c.ProfileDefaults) == 0 && len(c.Profiles) == 0
}

// TextBlockConfig describes a marker-delimited block in a free-text file.
type TextBlockConfig struct {
	// Path overrides the target's default file location.
	Path string `yaml:"path"`

	// Marker is the start-marker line. Defaults to a themectl-owned
	// marker derived from the theme name.
	Marker string `yaml:"marker"`

	// EndMarker is the end-marker line.
	EndMarker string `yaml:"endMarker"`

	// Block is the text written between the markers.
	Block string `yaml:"block"`
}

// SystemConfig describes OS-level appearance settings.
type SystemConfig struct {
	// AccentColor is a 6- or 8-hex-digit color, with optional leading '#'.
	AccentColor string `yaml:"accentColor"`

	// Wallpaper is the path of an image file to set as the desktop
	// background. A missing file skips the step, it never fails the plan.
	Wallpaper string `yaml:"wallpaper"`
}

// EditorSettingsConfig describes top-level keys replaced or inserted in the
// editor settings document.
type EditorSettingsConfig struct {
	// Path overrides the default editor settings JSON location.
	Path string `yaml:"path"`

	// Settings maps top-level keys to their new values.
	Settings map[string]any `yaml:"settings"`
}

// ThemeFileConfig describes a file overwritten verbatim with theme content.
type ThemeFileConfig struct {
	// Path overrides the default colorscheme file location.
	Path string `yaml:"path"`

	// Content is written to the file as-is. Empty content generates no step.
	Content string `yaml:"content"`
}

// Validate checks the invariants the rest of the engine relies on.
func (t *Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme has no name")
	}

	if t.Terminal != nil && len(t.Terminal.Scheme) > 0 {
		name, ok := t.Terminal.Scheme["name"].(string)
		if !ok || name == "" {
			return fmt.Errorf("terminal scheme must have a non-empty string name")
		}
	}

	if t.Terminal != nil {
		for i, p := range t.Terminal.Profiles {
			if !hasStringKey(p, "name") && !hasStringKey(p, "source") {
				return fmt.Errorf("terminal profile %d must have a name or source to match on", i)
			}
		}
	}

	return nil
}

func hasStringKey(m map[string]any, key string) bool {
	v, ok := m[key].(string)
	return ok && v != ""
}
