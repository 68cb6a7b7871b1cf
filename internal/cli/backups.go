package cli

import (
	"github.com/spf13/cobra"
)

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List backup sets, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		sets, err := eng.ListBackups()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(sets)
		}

		if len(sets) == 0 {
			PrintEmptyState("No backups yet. Backups are created automatically by 'themectl apply'.")
			return nil
		}

		rows := make([][]string, 0, len(sets))
		for _, set := range sets {
			theme := set.Theme
			if theme == "" {
				theme = "-"
			}
			rows = append(rows, []string{
				set.Name,
				theme,
				PrintCount(len(set.Entries), "entry", "entries"),
			})
		}
		PrintTable([]string{"NAME", "THEME", "ENTRIES"}, rows)
		return nil
	},
}
