package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/themectl/themectl/internal/backup"
	"github.com/themectl/themectl/internal/clock"
	"github.com/themectl/themectl/internal/config"
	"github.com/themectl/themectl/internal/engine"
	"github.com/themectl/themectl/internal/fsops"
	"github.com/themectl/themectl/internal/hash"
	"github.com/themectl/themectl/internal/sysprops"
	"github.com/themectl/themectl/internal/theme"
)

// harness wires a fully-assembled engine against temp directories. These
// tests use the real filesystem because the backup store scans its root
// with the OS directly; only time and system properties are faked.
type harness struct {
	engine  *engine.Engine
	props   *sysprops.FakeProps
	clock   *clock.FakeClock
	themes  string
	backups string
	targets string
}

func setupHarness(t *testing.T) *harness {
	t.Helper()
	root := t.TempDir()

	h := &harness{
		props:   sysprops.NewFakeProps(),
		clock:   clock.NewFakeClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)),
		themes:  filepath.Join(root, "themes"),
		backups: filepath.Join(root, "backups"),
		targets: filepath.Join(root, "targets"),
	}
	for _, dir := range []string{h.themes, h.targets} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
	}

	fs := fsops.NewRealFS()
	h.engine = engine.New(
		theme.NewFileRepo(fs, h.themes),
		backup.NewStore(fs, hash.NewSHA256Hasher(), h.backups),
		fs,
		h.props,
		h.clock,
		config.Paths{Root: root, Themes: h.themes, Backups: h.backups},
	)
	return h
}

func (h *harness) writeTheme(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(h.themes, name+".yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func (h *harness) target(name string) string {
	return filepath.Join(h.targets, name)
}

func (h *harness) writeTarget(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(h.target(name), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func (h *harness) readTarget(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(h.target(name))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return string(data)
}

// themeYAML renders a theme covering every target kind, pointed at files
// under the harness target directory. The accent and block content embed
// the theme name so assertions can tell themes apart.
func (h *harness) themeYAML(name, accent string) string {
	return `name: ` + name + `
description: integration test theme
terminal:
  settingsPath: ` + filepath.ToSlash(h.target("terminal.json")) + `
  scheme:
    name: ` + name + `
    background: "#101020"
  profileDefaults:
    colorScheme: ` + name + `
shellProfile:
  path: ` + filepath.ToSlash(h.target(".profile")) + `
  block: export THEME_PROFILE=` + name + `
shellRc:
  path: ` + filepath.ToSlash(h.target(".bashrc")) + `
  block: export THEME=` + name + `
system:
  accentColor: "` + accent + `"
  wallpaper: ` + filepath.ToSlash(h.target("wall.png")) + `
editorSettings:
  path: ` + filepath.ToSlash(h.target("editor.json")) + `
  settings:
    workbench.colorTheme: ` + name + `
themeFile:
  path: ` + filepath.ToSlash(h.target(name+".vim")) + `
  content: "hi Normal guifg=#ffffff\n"
editorRc:
  path: ` + filepath.ToSlash(h.target(".vimrc")) + `
  block: colorscheme ` + name + `
`
}

// seedTargets creates every file target in a pre-theme state.
func (h *harness) seedTargets(t *testing.T) {
	t.Helper()
	h.writeTarget(t, "terminal.json", `{"schemes": [], "profiles": {"defaults": {}, "list": []}}`)
	h.writeTarget(t, ".profile", "export PATH=$PATH:~/bin\n")
	h.writeTarget(t, ".bashrc", "alias ll='ls -l'\n")
	h.writeTarget(t, "editor.json", `{"editor.fontSize": 14}`)
	h.writeTarget(t, ".vimrc", "set number\n")
	h.writeTarget(t, "wall.png", "png")
}
