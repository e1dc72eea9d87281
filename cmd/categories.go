package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/triageagent/triage-cli/config"
	"github.com/triageagent/triage-cli/display"
	"github.com/triageagent/triage-cli/playbook"
)

var categoriesPlaybooks string

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List playbook categories",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := loggerFromCtx(cmd.Context()).With("command", "categories")

		cfg, err := config.LoadOrDefault()
		if err != nil {
			logger.Debug("error loading config", "error", err)
			cfg = &config.Config{}
		}

		catalog, err := playbook.Load(firstNonEmpty(categoriesPlaybooks, cfg.Playbooks))
		if err != nil {
			display.FatalErrWithSupportCTA(err)
		}

		for _, c := range catalog.Categories() {
			fmt.Printf("%s\t%d\n", c, len(catalog.Records(c)))
		}
	},
}

func init() {
	categoriesCmd.Flags().StringVar(&categoriesPlaybooks, "playbooks", "", "path to a JSON or YAML playbook catalog")
	rootCmd.AddCommand(categoriesCmd)
}
