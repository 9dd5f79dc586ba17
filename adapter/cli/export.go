package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/fitweek/internal/tracking/application/queries"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tracked weeks to a JSON file",
	Long: `Export the whole week collection as a versioned JSON document that
'fitweek import' accepts back.

Examples:
  fitweek export                  # writes fitweek-weeks-<date>.json
  fitweek export -o weeks.json    # writes to the given path
  fitweek export -o -             # writes to stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.ExportWeeksHandler == nil {
			return fmt.Errorf("export handler not configured")
		}

		result, err := app.ExportWeeksHandler.Handle(cmd.Context(), queries.ExportWeeksQuery{Now: time.Now()})
		if err != nil {
			return fmt.Errorf("failed to export weeks: %w", err)
		}

		if exportOutput == "-" {
			fmt.Print(string(result.Content))
			return nil
		}

		path := exportOutput
		if path == "" {
			path = result.Filename
		}
		if err := os.WriteFile(path, result.Content, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Exported weeks to %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: fitweek-weeks-<date>.json, '-' for stdout)")

	rootCmd.AddCommand(exportCmd)
}
