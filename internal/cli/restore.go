package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/themectl/themectl/internal/engine"
)

var restoreDryRun bool

var restoreCmd = &cobra.Command{
	Use:   "restore [backup-name]",
	Short: "Restore files from a backup set",
	Long: `Copy the files captured in a backup set back to their original locations.

Without an argument the most recent backup set is restored; pass a backup
name (as shown by 'themectl backups') to restore a specific one. Restoring
does not snapshot the pre-restore state - undoing a restore means picking
an older backup set explicitly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		req := &engine.RestoreRequest{DryRun: restoreDryRun}
		if len(args) > 0 {
			req.Name = args[0]
		}

		result, err := eng.Restore(context.Background(), req)
		if err != nil {
			return err
		}

		if restoreDryRun {
			PrintSection("Dry Run")
			PrintInfo(fmt.Sprintf("Would restore %s from backup %s",
				PrintCount(len(result.Restored), "file", "files"), result.Set.Name))
			PrintList(result.Restored, 1)
			return nil
		}

		PrintSuccess(fmt.Sprintf("Restored %s from backup %s",
			PrintCount(len(result.Restored), "file", "files"), result.Set.Name))
		PrintList(result.Restored, 1)
		return nil
	},
}

func init() {
	restoreCmd.Flags().BoolVar(&restoreDryRun, "dry-run", false, "Show what would be restored without restoring")
}
