// Package sysprops writes OS-level appearance settings.
//
// The accent color and wallpaper are not files the engine can snapshot, so
// they sit behind the Props interface: the real implementation shells out
// to the platform tool (reg.exe, gsettings, osascript), and tests inject a
// FakeProps that records writes.
package sysprops

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// ErrUnsupported indicates the current platform has no writable property
// for the requested setting. Callers treat it as a skip, not a failure.
var ErrUnsupported = errors.New("system property not supported on this platform")

// Props provides an abstraction for OS appearance settings.
type Props interface {
	// SetAccentColor writes the accent color as a 32-bit ARGB value.
	SetAccentColor(argb uint32) error

	// SetWallpaper sets the desktop background to the image at path.
	// The path must exist; existence is checked by the caller.
	SetWallpaper(path string) error
}

// ExecProps implements Props by invoking the platform's settings tool.
type ExecProps struct{}

// NewExecProps creates a new ExecProps.
func NewExecProps() *ExecProps {
	return &ExecProps{}
}

// SetAccentColor writes the accent color to the OS.
// Only Windows exposes a writable ARGB accent value; other platforms
// report ErrUnsupported.
func (p *ExecProps) SetAccentColor(argb uint32) error {
	switch runtime.GOOS {
	case "windows":
		return run("reg.exe", "add", `HKCU\SOFTWARE\Microsoft\Windows\DWM`,
			"/v", "AccentColor", "/t", "REG_DWORD", "/d", fmt.Sprintf("%d", argb), "/f")
	default:
		return fmt.Errorf("%w: accent color (%s)", ErrUnsupported, runtime.GOOS)
	}
}

// SetWallpaper sets the desktop background.
func (p *ExecProps) SetWallpaper(path string) error {
	switch runtime.GOOS {
	case "windows":
		if err := run("reg.exe", "add", `HKCU\Control Panel\Desktop`,
			"/v", "Wallpaper", "/t", "REG_SZ", "/d", path, "/f"); err != nil {
			return err
		}
		// Tell the shell to reload the wallpaper without a logout.
		return run("rundll32.exe", "user32.dll,UpdatePerUserSystemParameters")
	case "darwin":
		script := fmt.Sprintf(`tell application "System Events" to set picture of every desktop to %q`, path)
		return run("osascript", "-e", script)
	case "linux":
		return run("gsettings", "set", "org.gnome.desktop.background", "picture-uri", "file://"+path)
	default:
		return fmt.Errorf("%w: wallpaper (%s)", ErrUnsupported, runtime.GOOS)
	}
}

func run(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, out)
	}
	return nil
}

// FakeProps implements Props by recording writes for testing.
type FakeProps struct {
	// AccentColors holds every accent value written, in order.
	AccentColors []uint32

	// Wallpapers holds every wallpaper path written, in order.
	Wallpapers []string

	// Err, when set, is returned by every write.
	Err error
}

// NewFakeProps creates a new FakeProps.
func NewFakeProps() *FakeProps {
	return &FakeProps{}
}

// SetAccentColor records the accent value.
func (p *FakeProps) SetAccentColor(argb uint32) error {
	if p.Err != nil {
		return p.Err
	}
	p.AccentColors = append(p.AccentColors, argb)
	return nil
}

// SetWallpaper records the wallpaper path.
func (p *FakeProps) SetWallpaper(path string) error {
	if p.Err != nil {
		return p.Err
	}
	p.Wallpapers = append(p.Wallpapers, path)
	return nil
}
