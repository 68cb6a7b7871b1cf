package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Default target locations used when a theme omits an explicit path.
// These are compile-time constants per platform, resolved and expanded by
// the step generators before a plan step is returned.

// ExpandPath expands $VAR / ${VAR} references and a leading "~" in a path,
// makes it absolute, and cleans it. Plan steps require absolute paths, so
// every configured target location passes through here at build time.
func ExpandPath(path string) string {
	expanded := os.ExpandEnv(path)

	if expanded == "~" || strings.HasPrefix(expanded, "~/") || strings.HasPrefix(expanded, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			expanded = filepath.Join(home, expanded[1:])
		}
	}

	if !filepath.IsAbs(expanded) {
		if abs, err := filepath.Abs(expanded); err == nil {
			expanded = abs
		}
	}

	return filepath.Clean(expanded)
}

// ResolveTargetPath expands the configured path, or falls back to the
// given default when the configuration omits one.
func ResolveTargetPath(configured, fallback string) string {
	if configured != "" {
		return ExpandPath(configured)
	}
	return fallback
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// DefaultTerminalSettingsPath returns the default terminal settings JSON
// location: the Windows Terminal settings file on Windows, and an
// XDG-style equivalent elsewhere.
func DefaultTerminalSettingsPath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"),
			"Packages", "Microsoft.WindowsTerminal_8wekyb3d8bbwe", "LocalState", "settings.json")
	}
	return filepath.Join(homeDir(), ".config", "terminal", "settings.json")
}

// DefaultShellProfilePath returns the default shell profile location:
// the PowerShell profile on Windows, ~/.profile elsewhere.
func DefaultShellProfilePath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(homeDir(), "Documents", "PowerShell", "Microsoft.PowerShell_profile.ps1")
	}
	return filepath.Join(homeDir(), ".profile")
}

// DefaultShellRCPath returns the default interactive shell rc file.
func DefaultShellRCPath() string {
	return filepath.Join(homeDir(), ".bashrc")
}

// DefaultEditorSettingsPath returns the default editor settings JSON
// location (VS Code user settings).
func DefaultEditorSettingsPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Code", "User", "settings.json")
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Application Support", "Code", "User", "settings.json")
	default:
		return filepath.Join(homeDir(), ".config", "Code", "User", "settings.json")
	}
}

// DefaultEditorRCPath returns the default editor rc file (~/.vimrc).
func DefaultEditorRCPath() string {
	return filepath.Join(homeDir(), ".vimrc")
}

// DefaultThemeFilePath returns the default colorscheme file location for
// the given theme name (~/.vim/colors/<name>.vim).
func DefaultThemeFilePath(themeName string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, themeName)
	if name == "" {
		name = "theme"
	}
	return filepath.Join(homeDir(), ".vim", "colors", name+".vim")
}
