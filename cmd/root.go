package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcus/daypick/internal/output"
	"github.com/marcus/daypick/internal/workdir"
	"github.com/spf13/cobra"
)

var baseDir string

// SetVersion sets the version reported by --version
func SetVersion(v string) {
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "daypick",
	Short: "Pick weekdays and dates across three tabs, or type them as text",
	Long: `daypick - three panels in the terminal: Days of the week, Date picker and User input.

Pressing Run writes a result for the active tab. On the User input tab the text
is parsed back: weekday acronyms (MON, TUE, ...) check the Days of the week tab,
and a D/M/YYYY date selects the Date picker. When both are present the Date
picker ends up active.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initBaseDir(); err != nil {
			return err
		}
		level, _ := cmd.Flags().GetString("log-level")
		return setupLogging(level, os.Stderr)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if msg := exitMessage(err); msg != "" {
			output.Error("%s", msg)
		}
		os.Exit(1)
	}
}

// nameWithAliases returns "name, alias1, alias2" if aliases exist, else just "name"
func nameWithAliases(cmd *cobra.Command) string {
	if len(cmd.Aliases) > 0 {
		return cmd.Name() + ", " + strings.Join(cmd.Aliases, ", ")
	}
	return cmd.Name()
}

func init() {
	cobra.AddTemplateFunc("nameWithAliases", nameWithAliases)
	cobra.AddTemplateFunc("add", func(a, b int) int { return a + b })

	// Custom usage template that shows aliases inline
	usageTemplate := `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{range $group := .Groups}}

{{.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad (nameWithAliases .) (add .NamePadding 8)}} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Core Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)
	rootCmd.SetHelpCommandGroupID("system")
	rootCmd.SetCompletionCommandGroupID("system")

	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from $DAYPICK_LOG_LEVEL or config)")
}

func initBaseDir() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine working directory: %w", err)
	}
	baseDir = workdir.ResolveBaseDir(cwd)
	return nil
}

// getBaseDir returns the directory settings are read from
func getBaseDir() string {
	return baseDir
}
