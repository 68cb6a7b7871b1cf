package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPaths_RootOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv("THEMECTL_ROOT", root)

	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}

	if paths.Root != root {
		t.Errorf("Root = %q, want %q", paths.Root, root)
	}
	if paths.Themes != filepath.Join(root, "themes") {
		t.Errorf("Themes = %q, want %q", paths.Themes, filepath.Join(root, "themes"))
	}
	if paths.Backups != filepath.Join(root, "backups") {
		t.Errorf("Backups = %q, want %q", paths.Backups, filepath.Join(root, "backups"))
	}
}

func TestDefaultPaths_HomeFallback(t *testing.T) {
	t.Setenv("THEMECTL_ROOT", "")

	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}

	if !strings.HasSuffix(paths.Root, ".themectl") {
		t.Errorf("Root = %q, want a ~/.themectl suffix", paths.Root)
	}
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	t.Setenv("THEMECTL_ROOT", filepath.Join(root, "sub"))

	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}

	for _, dir := range []string{paths.Root, paths.Themes, paths.Backups} {
		if !dirExists(t, dir) {
			t.Errorf("directory %s was not created", dir)
		}
	}
}

func TestThemeSearchPath(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()

	tests := []struct {
		name string
		env  string
		want int
	}{
		{
			name: "unset",
			env:  "",
			want: 0,
		},
		{
			name: "single directory",
			env:  dir1,
			want: 1,
		},
		{
			name: "two directories",
			env:  dir1 + string(filepath.ListSeparator) + dir2,
			want: 2,
		},
		{
			name: "empty entries dropped",
			env:  string(filepath.ListSeparator) + dir1,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("THEMECTL_THEME_PATH", tt.env)
			got := ThemeSearchPath()
			if len(got) != tt.want {
				t.Errorf("ThemeSearchPath() = %v, want %d entries", got, tt.want)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("THEMECTL_TEST_DIR", "/opt/data")

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "absolute path unchanged",
			path: "/etc/hosts",
			want: "/etc/hosts",
		},
		{
			name: "env var expanded",
			path: "$THEMECTL_TEST_DIR/wallpaper.png",
			want: "/opt/data/wallpaper.png",
		},
		{
			name: "braced env var expanded",
			path: "${THEMECTL_TEST_DIR}/wallpaper.png",
			want: "/opt/data/wallpaper.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandPath(tt.path)
			if got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExpandPath_Tilde(t *testing.T) {
	got := ExpandPath("~/themes")
	if strings.HasPrefix(got, "~") {
		t.Errorf("ExpandPath(~/themes) = %q, tilde was not expanded", got)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ExpandPath(~/themes) = %q, want an absolute path", got)
	}
}

func TestExpandPath_RelativeMadeAbsolute(t *testing.T) {
	got := ExpandPath("themes/dark.yaml")
	if !filepath.IsAbs(got) {
		t.Errorf("ExpandPath(relative) = %q, want an absolute path", got)
	}
}

func TestResolveTargetPath(t *testing.T) {
	fallback := "/default/settings.json"

	if got := ResolveTargetPath("", fallback); got != fallback {
		t.Errorf("ResolveTargetPath(empty) = %q, want fallback %q", got, fallback)
	}
	if got := ResolveTargetPath("/custom/settings.json", fallback); got != "/custom/settings.json" {
		t.Errorf("ResolveTargetPath(custom) = %q, want /custom/settings.json", got)
	}
}

func TestDefaultTargetPaths_Absolute(t *testing.T) {
	paths := map[string]string{
		"terminal settings": DefaultTerminalSettingsPath(),
		"shell profile":     DefaultShellProfilePath(),
		"shell rc":          DefaultShellRCPath(),
		"editor settings":   DefaultEditorSettingsPath(),
		"editor rc":         DefaultEditorRCPath(),
		"theme file":        DefaultThemeFilePath("dark"),
	}

	for name, p := range paths {
		if !filepath.IsAbs(p) {
			t.Errorf("%s default path %q is not absolute", name, p)
		}
	}
}

func TestDefaultThemeFilePath_SanitizesName(t *testing.T) {
	got := DefaultThemeFilePath("my theme/v2")
	base := filepath.Base(got)
	if strings.ContainsAny(base, " /") {
		t.Errorf("DefaultThemeFilePath produced unsanitized base %q", base)
	}
	if !strings.HasSuffix(base, ".vim") {
		t.Errorf("DefaultThemeFilePath base = %q, want .vim suffix", base)
	}
}

func dirExists(t *testing.T, dir string) bool {
	t.Helper()
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
