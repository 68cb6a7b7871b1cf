package engine

import (
	"time"

	"github.com/themectl/themectl/internal/backup"
	"github.com/themectl/themectl/internal/plan"
	"github.com/themectl/themectl/internal/theme"
)

// ApplyRequest describes one apply operation.
type ApplyRequest struct {
	// Name selects a theme by name from the theme repository.
	Name string

	// Path applies a theme file directly, bypassing name resolution.
	// Exactly one of Name and Path must be set.
	Path string

	// DryRun reports the plan without writing or backing up anything.
	DryRun bool

	// SkipBackup applies the plan with no backup. Unsafe; intended for
	// rapid iteration on a theme only.
	SkipBackup bool
}

// StepStatus classifies the outcome of one executed step.
type StepStatus string

const (
	// StepApplied means the mutation completed.
	StepApplied StepStatus = "applied"

	// StepSkipped means the step declined to run (missing merge target,
	// missing wallpaper) without failing the plan.
	StepSkipped StepStatus = "skipped"

	// StepFailed means the mutation errored. Other steps still run.
	StepFailed StepStatus = "failed"
)

// StepResult records the outcome of one executed step.
type StepResult struct {
	// Name is the step's human-readable description.
	Name string

	// Target is the target kind the step mutates.
	Target plan.Target

	// Path is the file the step mutates, empty for system-property steps.
	Path string

	// Status is the outcome classification.
	Status StepStatus

	// Err holds the failure or skip reason, nil when applied.
	Err error
}

// ApplyResult is the outcome of one apply operation.
type ApplyResult struct {
	// Theme is the loaded theme the plan was built from.
	Theme *theme.Theme

	// Plan is the ordered plan, available even for dry runs.
	Plan *plan.Plan

	// Timestamp is when the apply started (and the backup was named).
	Timestamp time.Time

	// Backup is the backup set taken before mutation, nil for dry runs,
	// skip-backup runs, and empty plans.
	Backup *backup.Set

	// Steps holds per-step outcomes, empty for dry runs.
	Steps []StepResult
}

// Failed returns the number of failed steps.
func (r *ApplyResult) Failed() int {
	return r.countStatus(StepFailed)
}

// Applied returns the number of applied steps.
func (r *ApplyResult) Applied() int {
	return r.countStatus(StepApplied)
}

// Skipped returns the number of skipped steps.
func (r *ApplyResult) Skipped() int {
	return r.countStatus(StepSkipped)
}

func (r *ApplyResult) countStatus(status StepStatus) int {
	n := 0
	for _, s := range r.Steps {
		if s.Status == status {
			n++
		}
	}
	return n
}

// RestoreRequest describes one restore operation.
type RestoreRequest struct {
	// Name selects a backup set by exact directory name. Empty selects
	// the latest set.
	Name string

	// DryRun resolves and returns a set without copying anything back.
	DryRun bool
}

// RestoreResult is the outcome of one restore operation.
type RestoreResult struct {
	// Set is the backup set that was (or would be) restored.
	Set *backup.Set

	// Restored lists the original paths copied back, in manifest order.
	// For dry runs it lists the paths that would be restored.
	Restored []string

	// DryRun reports whether anything was actually written.
	DryRun bool
}
