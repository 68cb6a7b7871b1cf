package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/themectl/themectl/internal/backup"
	"github.com/themectl/themectl/internal/plan"
	"github.com/themectl/themectl/internal/theme"
)

// Algorithm steps:
// 1. Resolve the theme (by name via the repo, or directly by path)
// 2. Load and validate the theme model
// 3. Build the plan (fixed generator order)
// 4. Empty plan or dry run: return without touching anything
// 5. Back up every distinct target file (unless skipped)
// 6. Execute steps, collecting per-step outcomes
func (e *Engine) Apply(ctx context.Context, req *ApplyRequest) (*ApplyResult, error) {
	themePath, err := e.resolveThemePath(req)
	if err != nil {
		return nil, err
	}

	t, err := theme.Load(themePath)
	if err != nil {
		return nil, err
	}

	p := plan.Build(t)
	result := &ApplyResult{
		Theme:     t,
		Plan:      p,
		Timestamp: e.clock.Now(),
	}

	if p.IsEmpty() || req.DryRun {
		return result, nil
	}

	if !req.SkipBackup {
		set, err := e.backups.Create(t.Name, pendingFiles(p), result.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBackup, err)
		}
		result.Backup = set
	}

	env := &plan.Env{FS: e.fs, Props: e.props}
	for _, step := range p.Steps {
		result.Steps = append(result.Steps, runStep(step, env))
	}

	return result, nil
}

func (e *Engine) resolveThemePath(req *ApplyRequest) (string, error) {
	switch {
	case req.Path != "" && req.Name != "":
		return "", fmt.Errorf("%w: theme name and path are mutually exclusive", ErrValidation)
	case req.Path != "":
		return req.Path, nil
	case req.Name != "":
		return e.themes.Resolve(req.Name)
	default:
		return "", fmt.Errorf("%w: a theme name or path is required", ErrValidation)
	}
}

// runStep executes one step and classifies its outcome. A step failure is
// recorded, not propagated: targets are independent files, so the rest of
// the plan still runs.
func runStep(step plan.Step, env *plan.Env) StepResult {
	res := StepResult{
		Name:   step.Name(),
		Target: step.Target(),
		Path:   step.Path(),
	}

	err := step.Apply(env)
	switch {
	case err == nil:
		res.Status = StepApplied
	case errors.Is(err, plan.ErrSkipped):
		res.Status = StepSkipped
		res.Err = err
	default:
		res.Status = StepFailed
		res.Err = err
	}
	return res
}

// pendingFiles collects the distinct target files of a plan, in plan
// order. A target visited twice contributes one backup entry; steps with
// no file path (system properties) contribute none.
func pendingFiles(p *plan.Plan) []backup.PendingFile {
	seen := make(map[string]bool)
	var files []backup.PendingFile

	for _, step := range p.Steps {
		path := step.Path()
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		files = append(files, backup.PendingFile{
			Target: string(step.Target()),
			Path:   path,
		})
	}
	return files
}
