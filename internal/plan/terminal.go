package plan

import (
	"fmt"
)

// terminalStep merges a color scheme, profile defaults, and profile
// patches into the terminal settings JSON document.
type terminalStep struct {
	path            string
	scheme          map[string]any
	profileDefaults map[string]any
	profiles        []map[string]any
}

func (s *terminalStep) Name() string   { return "terminal settings" }
func (s *terminalStep) Target() Target { return TargetTerminal }
func (s *terminalStep) Path() string   { return s.path }

// Apply merges the configured values into the existing document. A missing
// settings file skips the step: the engine never fabricates a terminal
// settings file, only amends one the terminal itself wrote.
func (s *terminalStep) Apply(env *Env) error {
	exists, err := env.FS.Exists(s.path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", s.path, err)
	}
	if !exists {
		return fmt.Errorf("%w: terminal settings file %s does not exist", ErrSkipped, s.path)
	}

	data, err := env.FS.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	if len(s.scheme) > 0 {
		upsertScheme(doc, s.scheme)
	}
	if len(s.profileDefaults) > 0 {
		mergeProfileDefaults(doc, s.profileDefaults)
	}
	if len(s.profiles) > 0 {
		patchProfiles(doc, s.profiles)
	}

	out, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	if err := env.FS.AtomicWrite(s.path, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	return nil
}

// editorSettingsStep replaces or inserts top-level keys in the editor
// settings JSON document.
type editorSettingsStep struct {
	path     string
	settings map[string]any
}

func (s *editorSettingsStep) Name() string   { return "editor settings" }
func (s *editorSettingsStep) Target() Target { return TargetEditorSettings }
func (s *editorSettingsStep) Path() string   { return s.path }

// Apply merges the configured keys into the existing document. Like the
// terminal target, a missing file skips the step.
func (s *editorSettingsStep) Apply(env *Env) error {
	exists, err := env.FS.Exists(s.path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", s.path, err)
	}
	if !exists {
		return fmt.Errorf("%w: editor settings file %s does not exist", ErrSkipped, s.path)
	}

	data, err := env.FS.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	for k, v := range s.settings {
		doc[k] = v
	}

	out, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	if err := env.FS.AtomicWrite(s.path, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	return nil
}
