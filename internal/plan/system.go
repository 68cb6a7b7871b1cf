package plan

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/themectl/themectl/internal/sysprops"
)

// ParseAccentColor parses a 6- or 8-hex-digit color string, with optional
// leading '#', into a 32-bit ARGB value. 6-digit values are padded with a
// fully-opaque alpha channel.
func ParseAccentColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("accent color %q must have 6 or 8 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("accent color %q is not valid hex: %w", s, err)
	}

	if len(hex) == 6 {
		return uint32(v) | 0xFF000000, nil
	}
	return uint32(v), nil
}

// systemStep writes OS appearance settings: the accent color property and
// the desktop wallpaper. It mutates no file of its own, so it contributes
// nothing to a backup set.
type systemStep struct {
	accent    uint32
	hasAccent bool
	wallpaper string
}

func (s *systemStep) Name() string   { return "system settings" }
func (s *systemStep) Target() Target { return TargetSystem }
func (s *systemStep) Path() string   { return "" }

// Apply writes the accent color, then the wallpaper. A wallpaper whose
// file does not exist skips the step rather than failing the plan, and a
// platform without the property does the same.
func (s *systemStep) Apply(env *Env) error {
	if s.hasAccent {
		if err := env.Props.SetAccentColor(s.accent); err != nil {
			if errors.Is(err, sysprops.ErrUnsupported) {
				return fmt.Errorf("%w: %v", ErrSkipped, err)
			}
			return fmt.Errorf("failed to set accent color: %w", err)
		}
	}

	if s.wallpaper != "" {
		exists, err := env.FS.Exists(s.wallpaper)
		if err != nil {
			return fmt.Errorf("failed to check wallpaper %s: %w", s.wallpaper, err)
		}
		if !exists {
			return fmt.Errorf("%w: wallpaper %s does not exist", ErrSkipped, s.wallpaper)
		}
		if err := env.Props.SetWallpaper(s.wallpaper); err != nil {
			if errors.Is(err, sysprops.ErrUnsupported) {
				return fmt.Errorf("%w: %v", ErrSkipped, err)
			}
			return fmt.Errorf("failed to set wallpaper: %w", err)
		}
	}

	return nil
}
