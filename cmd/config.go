package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/triageagent/triage-cli/config"
	"github.com/triageagent/triage-cli/display"
	"github.com/triageagent/triage-cli/playbook"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the defaults used by analyze",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current config",
	Run: func(_ *cobra.Command, _ []string) {
		cfg, err := config.LoadOrDefault()
		if err != nil {
			display.FatalErr(err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			display.FatalErr(err)
		}
	},
}

var configSetCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Short:   "Set a config value",
	Example: "  triage config set device Windows\n  triage config set playbooks ~/playbooks.yaml",
	Long:    fmt.Sprintf("Set a config value. Keys: %s", strings.Join(config.Keys, ", ")),
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		logger := loggerFromCtx(cmd.Context()).With("command", "config set")

		cfg, err := config.LoadOrDefault()
		if err != nil {
			display.FatalErr(err)
		}

		key, value := args[0], args[1]
		if key == "playbooks" && value != "" {
			// fail early rather than on the next analyze
			if _, err := playbook.LoadFile(value); err != nil {
				display.FatalErr(err)
			}
		}
		if err := cfg.Set(key, value); err != nil {
			display.FatalErr(err)
		}

		if err := cfg.Save(); err != nil {
			display.FatalErr(fmt.Errorf("failed to save config: %w", err))
		}
		logger.Debug("config saved", "path", config.DefaultConfigFilePath, "key", key)
		display.Success(fmt.Sprintf("%s set to %q", key, value))
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
