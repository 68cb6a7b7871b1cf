package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/themectl/themectl/internal/engine"
)

var (
	applyPath       string
	applyDryRun     bool
	applySkipBackup bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [theme-name]",
	Short: "Apply a theme across all configured targets",
	Long: `Apply a theme by name (resolved from the themes directory and the
THEMECTL_THEME_PATH search path) or directly from a file with --path.

Before any file is modified it is copied into a timestamped backup set, so
the apply can be undone with 'themectl restore'. Use --dry-run to preview
the plan, or --skip-backup to apply without a snapshot (unsafe, intended
for rapid theme iteration only).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		req := &engine.ApplyRequest{
			Path:       applyPath,
			DryRun:     applyDryRun,
			SkipBackup: applySkipBackup,
		}
		if len(args) > 0 {
			req.Name = args[0]
		}

		result, err := eng.Apply(context.Background(), req)
		if err != nil {
			return err
		}

		for _, w := range result.Plan.Warnings {
			PrintWarning(w)
		}

		if result.Plan.IsEmpty() {
			PrintEmptyState(fmt.Sprintf("Theme %q configures no targets; nothing to do.", result.Theme.Name))
			return nil
		}

		if applyDryRun {
			PrintSection("Dry Run")
			PrintInfo(fmt.Sprintf("Would apply %s", PrintCount(len(result.Plan.Steps), "step", "steps")))
			steps := make([]string, 0, len(result.Plan.Steps))
			for _, step := range result.Plan.Steps {
				if step.Path() != "" {
					steps = append(steps, fmt.Sprintf("%s: %s", step.Name(), step.Path()))
				} else {
					steps = append(steps, step.Name())
				}
			}
			PrintList(steps, 1)
			return nil
		}

		if result.Backup != nil {
			PrintLabelValue("Backup", result.Backup.Name)
		}

		for _, sr := range result.Steps {
			switch sr.Status {
			case engine.StepApplied:
				PrintSuccess(sr.Name)
			case engine.StepSkipped:
				PrintWarning(fmt.Sprintf("%s: %v", sr.Name, sr.Err))
			case engine.StepFailed:
				PrintError(fmt.Sprintf("%s: %v", sr.Name, sr.Err))
			}
		}

		if failed := result.Failed(); failed > 0 {
			return fmt.Errorf("%s failed", PrintCount(failed, "step", "steps"))
		}

		PrintSuccess(fmt.Sprintf("Applied theme %q (%s)", result.Theme.Name,
			PrintCount(result.Applied(), "step", "steps")))
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVar(&applyPath, "path", "", "Apply a theme file directly instead of resolving by name")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Show what would be applied without applying")
	applyCmd.Flags().BoolVar(&applySkipBackup, "skip-backup", false, "Apply without taking a backup (unsafe)")
}
