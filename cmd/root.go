package cmd

import (
	"fmt"
	"os"

	"l10n-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "l10n-manager",
	Short: "Android string resource localization manager",
	Long: `l10n-manager keeps the strings.xml files of an Android project in sync.
It exports untranslated strings, imports translated CSV files back into
values-<locale>/strings.xml, validates resources and serves the same
operations over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps, as a CLI user expects.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&resDir, "res-dir", "", "Android res directory (overrides resources.res_dir)")
}

var resDir string
