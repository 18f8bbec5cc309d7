package cmd

import (
	"context"
	"fmt"

	"l10n-manager/feature/localize"

	"github.com/spf13/cobra"
)

var (
	// Flags for the localize command
	exportMapping   []string
	exportOutputDir string
)

// localizeCmd exports the strings each locale has not translated yet.
var localizeCmd = &cobra.Command{
	Use:   "localize",
	Short: "Export untranslated strings to CSV files",
	Long: `Writes <output-dir>/<name>.csv for every name=locale mapping with the
default strings that values-<locale>/strings.xml does not define yet. The
files can be filled in and imported with the localized command.

Example:
  localize --mapping french=fr --output-dir translations`,
	RunE: runLocalize,
}

func init() {
	localizeCmd.Flags().StringSliceVarP(&exportMapping, "mapping", "m", nil, "Comma separated name=locale pairs")
	localizeCmd.Flags().StringVarP(&exportOutputDir, "output-dir", "o", "", "Output directory (defaults to resources.translations_dir)")

	RootCmd.AddCommand(localizeCmd)
}

func runLocalize(cmd *cobra.Command, args []string) error {
	mappings, err := parseMappings(exportMapping)
	if err != nil {
		return err
	}

	e, err := newEnv(resDir, "")
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	outDir := exportOutputDir
	if outDir == "" {
		outDir = e.cfg.Resources.TranslationsDir
	}

	svc := localize.NewService(e.pools(false), e.reader, e.logger)
	exports, err := svc.Export(context.Background(), mappings, outDir)
	for _, ex := range exports {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-8s %4d pending -> %s\n", ex.Name, ex.Locale, ex.Pending, ex.Path)
	}
	return err
}
