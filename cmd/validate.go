package cmd

import (
	"fmt"

	"l10n-manager/feature/validate"

	"github.com/spf13/cobra"
)

// validateCmd checks strings files for problems aapt or translators trip over.
var validateCmd = &cobra.Command{
	Use:   "validate [locale...]",
	Short: "Validate strings files",
	Long: `Checks the default strings file and the given locales (all locales when
none is given) for missing names, duplicates, unescaped apostrophes,
untranslated or unknown entries and mismatched format specifiers.

Use "default" to name the default strings file explicitly.`,
	RunE: runValidate,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	e, err := newEnv(resDir, "")
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	svc := validate.NewService(e.layout, e.logger)

	var reports []*validate.Report
	if len(args) == 0 {
		reports, err = svc.ValidateAll()
		if err != nil {
			return err
		}
	} else {
		for _, target := range args {
			report, err := svc.Validate(target)
			if err != nil {
				return err
			}
			reports = append(reports, report)
		}
	}

	out := cmd.OutOrStdout()
	invalid := 0
	for _, r := range reports {
		if !r.Valid() {
			invalid++
		}
		fmt.Fprintf(out, "%s (%s): %d issue(s)\n", r.Target, r.Path, len(r.Issues))
		for _, i := range r.Issues {
			fmt.Fprintf(out, "  [%s] %s %s: %s\n", i.Severity, i.Rule, i.Name, i.Message)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d strings files have errors", invalid, len(reports))
	}
	return nil
}
