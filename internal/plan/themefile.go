package plan

import (
	"fmt"
	"path/filepath"
)

// themeFileStep overwrites the editor colorscheme file verbatim with the
// configured content, creating the destination directory as needed.
type themeFileStep struct {
	path    string
	content string
}

func (s *themeFileStep) Name() string   { return "editor theme file" }
func (s *themeFileStep) Target() Target { return TargetThemeFile }
func (s *themeFileStep) Path() string   { return s.path }

func (s *themeFileStep) Apply(env *Env) error {
	if err := env.FS.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create theme file directory: %w", err)
	}
	if err := env.FS.AtomicWrite(s.path, []byte(s.content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
