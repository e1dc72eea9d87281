package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Match problem descriptions to troubleshooting playbooks",
	Long: `triage matches a problem description against a catalog of troubleshooting
playbooks and builds a report with clarifying questions, recommended steps
and commands for your device.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logLevel := slog.LevelInfo
		if debugFlag {
			logLevel = slog.LevelDebug
		}
		textHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: debugFlag,
			Level:     logLevel,
		})
		logger := slog.New(textHandler)
		slog.SetDefault(logger)
		cmd.SetContext(ctxWithLogger(cmd.Context(), logger))
	},
}

var debugFlag bool

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Enable debug logging")
}
