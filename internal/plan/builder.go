package plan

import (
	"fmt"
	"strings"

	"github.com/themectl/themectl/internal/config"
	"github.com/themectl/themectl/internal/theme"
)

// Generator order is fixed: terminal, shell profile, shell rc, system,
// editor settings, theme file, editor rc. Targets are disjoint files, so
// the order only determines log and manifest ordering.

// Build constructs the plan for one apply of the given theme. Absent or
// empty target configurations generate no step. Every step in the returned
// plan has a fully-resolved absolute path.
func Build(t *theme.Theme) *Plan {
	p := &Plan{Theme: t.Name}

	p.add(terminalStepFor(t))
	p.add(textBlockStepFor(t, t.ShellProfile, TargetShellProfile,
		"shell profile block", config.DefaultShellProfilePath(), "#"))
	p.add(textBlockStepFor(t, t.ShellRC, TargetShellRC,
		"shell rc block", config.DefaultShellRCPath(), "#"))
	p.add(systemStepFor(t, p.warn))
	p.add(editorSettingsStepFor(t))
	p.add(themeFileStepFor(t))
	p.add(textBlockStepFor(t, t.EditorRC, TargetEditorRC,
		"editor rc block", config.DefaultEditorRCPath(), `"`))

	return p
}

func terminalStepFor(t *theme.Theme) Step {
	c := t.Terminal
	if c == nil || c.IsEmpty() {
		return nil
	}

	return &terminalStep{
		path:            config.ResolveTargetPath(c.SettingsPath, config.DefaultTerminalSettingsPath()),
		scheme:          c.Scheme,
		profileDefaults: c.ProfileDefaults,
		profiles:        c.Profiles,
	}
}

func textBlockStepFor(t *theme.Theme, c *theme.TextBlockConfig, target Target, name, defaultPath, commentPrefix string) Step {
	if c == nil || strings.TrimSpace(c.Block) == "" {
		return nil
	}

	marker, endMarker, searchMarker := defaultMarkers(commentPrefix, t.Name)
	if c.Marker != "" {
		marker = c.Marker
		searchMarker = c.Marker
	}
	if c.EndMarker != "" {
		endMarker = c.EndMarker
	}

	return &textBlockStep{
		name:         name,
		target:       target,
		path:         config.ResolveTargetPath(c.Path, defaultPath),
		marker:       marker,
		endMarker:    endMarker,
		searchMarker: searchMarker,
		block:        c.Block,
	}
}

func systemStepFor(t *theme.Theme, warn func(string)) Step {
	c := t.System
	if c == nil {
		return nil
	}

	s := &systemStep{}

	if c.AccentColor != "" {
		accent, err := ParseAccentColor(c.AccentColor)
		if err != nil {
			// Invalid accent drops the accent write, never the plan.
			warn(fmt.Sprintf("ignoring accent color: %v", err))
		} else {
			s.accent = accent
			s.hasAccent = true
		}
	}

	if c.Wallpaper != "" {
		s.wallpaper = config.ExpandPath(c.Wallpaper)
	}

	if !s.hasAccent && s.wallpaper == "" {
		return nil
	}
	return s
}

func editorSettingsStepFor(t *theme.Theme) Step {
	c := t.EditorSettings
	if c == nil || len(c.Settings) == 0 {
		return nil
	}

	return &editorSettingsStep{
		path:     config.ResolveTargetPath(c.Path, config.DefaultEditorSettingsPath()),
		settings: c.Settings,
	}
}

func themeFileStepFor(t *theme.Theme) Step {
	c := t.ThemeFile
	if c == nil || c.Content == "" {
		return nil
	}

	return &themeFileStep{
		path:    config.ResolveTargetPath(c.Path, config.DefaultThemeFilePath(t.Name)),
		content: c.Content,
	}
}
