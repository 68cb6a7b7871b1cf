package plan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/themectl/themectl/internal/fsops"
	"github.com/themectl/themectl/internal/sysprops"
)

func TestParseAccentColor(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      uint32
		wantError bool
	}{
		{
			name:  "six digits get opaque alpha",
			input: "1a2b3c",
			want:  0xFF1A2B3C,
		},
		{
			name:  "eight digits pass through",
			input: "ff1a2b3c",
			want:  0xFF1A2B3C,
		},
		{
			name:  "leading hash stripped",
			input: "#1a2b3c",
			want:  0xFF1A2B3C,
		},
		{
			name:  "custom alpha preserved",
			input: "801a2b3c",
			want:  0x801A2B3C,
		},
		{
			name:  "uppercase accepted",
			input: "1A2B3C",
			want:  0xFF1A2B3C,
		},
		{
			name:      "non-hex rejected",
			input:     "zzzzzz",
			wantError: true,
		},
		{
			name:      "wrong length rejected",
			input:     "1a2b3",
			wantError: true,
		},
		{
			name:      "empty rejected",
			input:     "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAccentColor(tt.input)
			if (err != nil) != tt.wantError {
				t.Fatalf("ParseAccentColor(%q) error = %v, wantError %v", tt.input, err, tt.wantError)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseAccentColor(%q) = %#x, want %#x", tt.input, got, tt.want)
			}
		})
	}
}

func TestSystemStep_Apply(t *testing.T) {
	dir := t.TempDir()
	wallpaper := filepath.Join(dir, "wall.png")
	if err := os.WriteFile(wallpaper, []byte("png"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	props := sysprops.NewFakeProps()
	env := &Env{FS: fsops.NewRealFS(), Props: props}

	step := &systemStep{accent: 0xFF1A2B3C, hasAccent: true, wallpaper: wallpaper}
	if err := step.Apply(env); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if len(props.AccentColors) != 1 || props.AccentColors[0] != 0xFF1A2B3C {
		t.Errorf("accent writes = %v, want [0xff1a2b3c]", props.AccentColors)
	}
	if len(props.Wallpapers) != 1 || props.Wallpapers[0] != wallpaper {
		t.Errorf("wallpaper writes = %v, want [%s]", props.Wallpapers, wallpaper)
	}
}

func TestSystemStep_Apply_MissingWallpaperSkips(t *testing.T) {
	props := sysprops.NewFakeProps()
	env := &Env{FS: fsops.NewRealFS(), Props: props}

	step := &systemStep{wallpaper: filepath.Join(t.TempDir(), "missing.png")}
	err := step.Apply(env)

	if !errors.Is(err, ErrSkipped) {
		t.Errorf("Apply() error = %v, want ErrSkipped", err)
	}
	if len(props.Wallpapers) != 0 {
		t.Errorf("wallpaper was written despite missing file: %v", props.Wallpapers)
	}
}

func TestSystemStep_Apply_UnsupportedPlatformSkips(t *testing.T) {
	props := sysprops.NewFakeProps()
	props.Err = sysprops.ErrUnsupported
	env := &Env{FS: fsops.NewRealFS(), Props: props}

	step := &systemStep{accent: 1, hasAccent: true}
	if err := step.Apply(env); !errors.Is(err, ErrSkipped) {
		t.Errorf("Apply() error = %v, want ErrSkipped", err)
	}
}

func TestSystemStep_Apply_PropsFailure(t *testing.T) {
	props := sysprops.NewFakeProps()
	props.Err = errors.New("registry write denied")
	env := &Env{FS: fsops.NewRealFS(), Props: props}

	step := &systemStep{accent: 1, hasAccent: true}
	err := step.Apply(env)
	if err == nil || errors.Is(err, ErrSkipped) {
		t.Errorf("Apply() error = %v, want a hard failure", err)
	}
}
