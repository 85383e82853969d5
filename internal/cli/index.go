// internal/cli/index.go
package cli

import (
	"fmt"

	"github.com/law-makers/indexables/internal/ui"
	"github.com/law-makers/indexables/internal/utils/output"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	headers    []string
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:     "index <domain>",
	Aliases: []string{"links"},
	Short:   "Print the same-domain links on a domain's landing page",
	Long: `Parses the argument as a URL, keeps only its host and fetches https://<host>.
Every anchor on that page is then checked: root-relative links ("/path") are
prefixed with the origin and absolute links containing the origin are kept.

The result is printed one link per line, or written to a file with --output.`,
	Example: `  # Print indexable links
  indexables index https://blog.com/some/post

  # Save a JSON report
  indexables index https://blog.com --output=links.json

  # Markdown or CSV reports are picked by extension
  indexables index https://blog.com -o links.md

  # Send a custom header with the page request
  indexables index https://blog.com -H "Accept-Language: de"`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringVarP(&outputPath, "output", "o", "", "File path to save the report (.json, .csv, .md, .html, .txt)")
	indexCmd.Flags().StringArrayVarP(&headers, "header", "H", []string{}, "Custom headers (e.g., -H \"Accept-Language: de\")")
}

func runIndex(cmd *cobra.Command, args []string) error {
	a := GetAppFromCmd(cmd)
	if a == nil {
		return fmt.Errorf("application not initialized")
	}

	report, err := a.Index(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := output.Save(report, outputPath); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		a.Logger.Info().Str("file", outputPath).Msg("Report saved")
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", ui.Success(fmt.Sprintf("✓ Saved %d links to %s", report.Count(), outputPath)))
		return nil
	}

	if report.Count() == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", ui.Info("No indexable links found on "+report.Base))
		return nil
	}

	return output.WriteText(cmd.OutOrStdout(), report)
}
