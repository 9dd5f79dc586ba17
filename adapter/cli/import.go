package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/fitweek/internal/tracking/application/commands"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import tracked weeks from a JSON file",
	Long: `Replace the stored week collection with the contents of an exported
JSON file. The whole file is validated first; a single malformed record
rejects the import and leaves the current data untouched.

Examples:
  fitweek import fitweek-weeks-2025-12-14.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.ImportWeeksHandler == nil {
			return fmt.Errorf("import handler not configured")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		result, err := app.ImportWeeksHandler.Handle(cmd.Context(), commands.ImportWeeksCommand{Data: data})
		if err != nil {
			return fmt.Errorf("failed to import weeks: %w", err)
		}

		fmt.Printf("Imported %d weeks from %s\n", result.Count, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
