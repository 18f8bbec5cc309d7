package cmd

import (
	"context"
	"fmt"

	"l10n-manager/feature/localized"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the localized command
	importMapping  []string
	importInputDir string
	importDryRun   bool
)

// localizedCmd imports translated CSV files into the locale strings files.
var localizedCmd = &cobra.Command{
	Use:   "localized",
	Short: "Import translated strings into values-<locale>/strings.xml",
	Long: `Reads <input-dir>/<name>.csv for every name=locale mapping, matches each
row against the default strings and rewrites values-<locale>/strings.xml with
the merged, deduplicated entries. A failing locale does not affect the others.

Examples:
  # Import french and german translations
  localized --mapping french=fr,german=de

  # Show what would change without writing
  localized --mapping french=fr --dry-run`,
	RunE: runLocalized,
}

func init() {
	localizedCmd.Flags().StringSliceVarP(&importMapping, "mapping", "m", nil, "Comma separated name=locale pairs")
	localizedCmd.Flags().StringVar(&importInputDir, "input-dir", "", "Directory of <name>.csv files (overrides resources.translations_dir)")
	localizedCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Reconcile without writing, recording or publishing")

	RootCmd.AddCommand(localizedCmd)
}

func runLocalized(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	mappings, err := parseMappings(importMapping)
	if err != nil {
		return err
	}

	e, err := newEnv(resDir, importInputDir)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	pub, err := e.publisher(ctx)
	if err != nil {
		return err
	}
	svc, err := e.importService(e.pools(false), e.historyFeature(ctx), pub)
	if err != nil {
		return err
	}

	report, err := svc.Run(ctx, mappings, localized.Options{DryRun: importDryRun})
	if report != nil {
		printImportReport(cmd, report)
	}
	if err != nil {
		return err
	}

	e.logger.Info("Import finished", zap.String("run_id", report.RunID), zap.Int("locales", len(report.Locales)))
	return nil
}

func printImportReport(cmd *cobra.Command, report *localized.Report) {
	out := cmd.OutOrStdout()
	if report.DryRun {
		fmt.Fprintln(out, "=== DRY RUN (no files written) ===")
	}
	for _, lr := range report.Locales {
		status := "ok"
		if lr.Error != "" {
			status = "FAILED: " + lr.Error
		}
		fmt.Fprintf(out, "%-12s %-8s records=%d updated=%d added=%d unmatched=%d %s\n",
			lr.Name, lr.Locale, lr.Records, len(lr.Updated), len(lr.Added), lr.Unmatched, status)
	}
}
