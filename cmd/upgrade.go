package cmd

import (
	"os"

	"github.com/getsavvyinc/upgrade-cli"
	"github.com/getsavvyinc/upgrade-cli/release/asset"
	"github.com/spf13/cobra"
	"github.com/triageagent/triage-cli/config"
	"github.com/triageagent/triage-cli/display"
)

const owner = "triageagent"
const repo = "triage-cli"

// upgradeCmd represents the upgrade command
var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "upgrade triage to the latest version",
	Long:  `upgrade triage to the latest released version from GitHub`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		logger := loggerFromCtx(ctx).With("command", "upgrade")

		executablePath, err := os.Executable()
		if err != nil {
			display.FatalErr(err)
		}
		version := config.Version()
		logger.Debug("checking for new version", "current", version, "executable", executablePath)

		assetDownloader := asset.NewAssetDownloader(executablePath, asset.WithLookupArchFallback(map[string]string{
			"amd64": "x86_64",
			"386":   "i386",
		}))
		upgrader := upgrade.NewUpgrader(owner, repo, executablePath, upgrade.WithAssetDownloader(assetDownloader))

		if ok, err := upgrader.IsNewVersionAvailable(ctx, version); err != nil {
			display.Error(err)
			return
		} else if !ok {
			display.Info("triage is already up to date")
			return
		}

		display.Info("Upgrading triage...")
		if err := upgrader.Upgrade(ctx, version); err != nil {
			display.FatalErr(err)
		}
		display.Success("triage has been upgraded to the latest version")
	},
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}
