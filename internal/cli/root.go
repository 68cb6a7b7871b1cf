package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for themectl.
var rootCmd = &cobra.Command{
	Use:     "themectl",
	Version: "dev",
	Short:   "Reversible theme manager for terminal, shell, and editor",
	Long: `themectl applies declarative theme definitions across your terminal settings,
shell profile files, editor configuration, and OS appearance settings.

Every file it touches is snapshotted into a backup set first, so any apply
can be undone with 'themectl restore'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc renders help with colored group titles, listing grouped
// commands first and everything else under "Additional Commands".
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	writeCommands := func(title string, match func(*cobra.Command) bool, titleColor *color.Color) {
		var lines []string
		for _, c := range cmd.Commands() {
			if !c.Hidden && match(c) {
				lines = append(lines, fmt.Sprintf("  %-11s %s", c.Name(), c.Short))
			}
		}
		if len(lines) == 0 {
			return
		}
		help.WriteString(titleColor.Sprint(title))
		help.WriteString("\n")
		help.WriteString(strings.Join(lines, "\n"))
		help.WriteString("\n\n")
	}

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	fmt.Fprintf(&help, "\n  %s\n\n", cmd.UseLine())

	for _, group := range cmd.Groups() {
		id := group.ID
		writeCommands(group.Title, func(c *cobra.Command) bool { return c.GroupID == id }, groupTitleColor)
	}
	writeCommands("Additional Commands:", func(c *cobra.Command) bool { return c.GroupID == "" }, sectionTitleColor)

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	rootCmd.SetHelpFunc(customHelpFunc)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "theme-application",
		Title: "Theme Application:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "backup-restore",
		Title: "Backup & Restore:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the themectl CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for themectl for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	shells := []struct {
		name string
		gen  func() error
	}{
		{"bash", func() error { return rootCmd.GenBashCompletion(os.Stdout) }},
		{"zsh", func() error { return rootCmd.GenZshCompletion(os.Stdout) }},
		{"fish", func() error { return rootCmd.GenFishCompletion(os.Stdout, true) }},
		{"powershell", func() error { return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout) }},
	}
	for _, shell := range shells {
		gen := shell.gen
		completionCmd.AddCommand(&cobra.Command{
			Use:                   shell.name,
			Short:                 fmt.Sprintf("Generate the autocompletion script for %s", shell.name),
			DisableFlagsInUseLine: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return gen()
			},
		})
	}
	rootCmd.AddCommand(completionCmd)

	// Theme Application commands
	applyCmd.GroupID = "theme-application"
	themesCmd.GroupID = "theme-application"
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(themesCmd)

	// Backup & Restore commands
	backupsCmd.GroupID = "backup-restore"
	restoreCmd.GroupID = "backup-restore"
	rootCmd.AddCommand(backupsCmd)
	rootCmd.AddCommand(restoreCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
