package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/triageagent/triage-cli/config"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the triage cli version",
	Long:  "Shows the triage cli version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("version:", config.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
