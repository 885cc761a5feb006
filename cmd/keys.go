package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/marcus/daypick/internal/output"
	"github.com/marcus/daypick/pkg/tabui/keymap"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:     "keys",
	Short:   "Show key bindings, including overrides from .daypick/keymap.json",
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, skipped, err := loadKeymap(getBaseDir())
		if err != nil {
			output.Warning("keymap: %v (showing defaults)", err)
		}
		for _, s := range skipped {
			output.Warning("keymap: skipped %s", s)
		}

		md := registry.GenerateHelpMarkdown()

		raw, _ := cmd.Flags().GetBool("raw")
		if raw || !output.IsTerminal() {
			fmt.Print(md)
			return nil
		}

		rendered, err := output.RenderMarkdown(md)
		if err != nil {
			fmt.Print(md)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

var keysInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .daypick/keymap.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, err := writeExampleKeymap(getBaseDir(), force)
		if err != nil {
			output.Error("%v", err)
			return reported(err)
		}

		output.Success("Wrote %s", path)
		output.Info("Edit it to rebind keys, then run 'daypick keys' to check the result.")
		return nil
	},
}

// writeExampleKeymap saves the example overrides under dir, refusing to
// replace an existing file unless force is set
func writeExampleKeymap(dir string, force bool) (string, error) {
	path := keymap.ConfigPath(dir)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%s already exists (use --force to replace it)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return path, err
		}
	}
	if err := keymap.SaveConfig(path, keymap.ExampleConfig()); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func init() {
	keysCmd.AddCommand(keysInitCmd)
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().Bool("raw", false, "Print markdown without rendering")
	keysInitCmd.Flags().Bool("force", false, "Replace an existing keymap.json")
}
