package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/themectl/themectl/internal/config"
	"github.com/themectl/themectl/internal/fsops"
	"github.com/themectl/themectl/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List discoverable themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := config.DefaultPaths()
		if err != nil {
			return fmt.Errorf("failed to get config paths: %w", err)
		}

		themeDirs := append([]string{paths.Themes}, config.ThemeSearchPath()...)
		repo := theme.NewFileRepo(fsops.NewRealFS(), themeDirs...)

		entries, err := repo.List()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(entries)
		}

		if len(entries) == 0 {
			PrintEmptyState(fmt.Sprintf("No themes found. Put theme YAML files in %s.", paths.Themes))
			return nil
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			desc := e.Description
			if desc == "" {
				desc = "-"
			}
			rows = append(rows, []string{e.Name, desc, e.Path})
		}
		PrintTable([]string{"NAME", "DESCRIPTION", "PATH"}, rows)
		return nil
	},
}
