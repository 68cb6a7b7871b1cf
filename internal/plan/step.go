// Package plan turns a theme into an ordered list of target mutations.
//
// A plan is built once per apply operation by invoking one step generator
// per target kind in a fixed order. Each generator reads the theme and
// emits zero or one step; a step is a fully-resolved description of a
// single mutation, with every value it needs captured at build time. Steps
// are inert until the executor invokes Apply, and no step reads mutable
// state at apply time beyond its own target file.
package plan

import (
	"errors"

	"github.com/themectl/themectl/internal/fsops"
	"github.com/themectl/themectl/internal/sysprops"
)

// Target identifies one external system a step can mutate.
type Target string

// Target kinds, in plan order.
const (
	TargetTerminal       Target = "terminal"
	TargetShellProfile   Target = "shell_profile"
	TargetShellRC        Target = "shell_rc"
	TargetSystem         Target = "system"
	TargetEditorSettings Target = "editor_settings"
	TargetThemeFile      Target = "theme_file"
	TargetEditorRC       Target = "editor_rc"
)

// ErrSkipped marks a step that declined to run without failing: a merge
// target whose file does not exist, or a wallpaper pointing at a missing
// image. Wrapped errors carry the reason.
var ErrSkipped = errors.New("step skipped")

// Env carries the collaborators a step mutation may touch.
type Env struct {
	FS    fsops.FS
	Props sysprops.Props
}

// Step describes one target mutation. Implementations are plain structs
// holding resolved values, so a plan can be logged and inspected before
// anything is written.
type Step interface {
	// Name is a short human-readable description of the mutation.
	Name() string

	// Target returns the target kind this step mutates.
	Target() Target

	// Path is the absolute file the step mutates, resolved and
	// environment-expanded at build time. Empty for steps that only
	// write system properties and so have nothing to back up.
	Path() string

	// Apply performs the mutation. A nil return means applied; an error
	// wrapping ErrSkipped means the step declined without failing.
	Apply(env *Env) error
}

// Plan is the ordered, fully-resolved set of mutations for one apply.
type Plan struct {
	// Theme is the name of the theme the plan was built from.
	Theme string

	// Steps is the ordered list of mutations to execute.
	Steps []Step

	// Warnings are non-fatal findings from plan building, e.g. an accent
	// color that failed to parse.
	Warnings []string
}

// IsEmpty reports whether the plan has no steps.
func (p *Plan) IsEmpty() bool {
	return len(p.Steps) == 0
}

func (p *Plan) add(s Step) {
	if s != nil {
		p.Steps = append(p.Steps, s)
	}
}

func (p *Plan) warn(msg string) {
	p.Warnings = append(p.Warnings, msg)
}
