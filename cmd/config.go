package cmd

import (
	"fmt"
	"strings"

	"github.com/marcus/daypick/internal/config"
	"github.com/marcus/daypick/internal/output"
	"github.com/spf13/cobra"
)

func isValidConfigKey(key string) bool {
	for _, k := range config.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage daypick configuration",
	GroupID: "system",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]

		if !isValidConfigKey(key) {
			output.Error("unknown config key: %s", key)
			fmt.Println("Valid keys:", strings.Join(config.Keys(), ", "))
			return reported(fmt.Errorf("unknown config key: %s", key))
		}

		if key == config.KeyDefaultTab {
			var tv tabValue
			if err := tv.Set(val); err == nil {
				val = string(tv.tab)
			}
		}

		if err := config.Set(getBaseDir(), key, val); err != nil {
			output.Error("%v", err)
			return reported(err)
		}

		output.Success("%s = %s", key, val)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show config values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := config.Keys()
		if len(args) == 1 {
			if !isValidConfigKey(args[0]) {
				output.Error("unknown config key: %s", args[0])
				return reported(fmt.Errorf("unknown config key: %s", args[0]))
			}
			keys = []string{args[0]}
		}

		for _, key := range keys {
			val, err := config.Get(getBaseDir(), key)
			if err != nil {
				output.Error("load config: %v", err)
				return reported(err)
			}
			if len(keys) == 1 {
				fmt.Println(val)
				continue
			}
			fmt.Println(output.FormatField(key, val))
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}
