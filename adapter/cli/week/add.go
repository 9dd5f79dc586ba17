package week

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/fitweek/adapter/cli"
	"github.com/felixgeelhaar/fitweek/internal/tracking/application/commands"
)

var addWeekOf string

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new tracked week",
	Long: `Create an empty week entry. Without a date the week containing today
is used. The date is normalized to its Monday, and when that week is
already tracked the next untracked week is created instead.

Examples:
  fitweek week add
  fitweek week add --week-of 2025-12-11`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AddWeekHandler == nil {
			return fmt.Errorf("week handler not configured")
		}

		result, err := app.AddWeekHandler.Handle(cmd.Context(), commands.AddWeekCommand{
			WeekOf: addWeekOf,
			Now:    time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to add week: %w", err)
		}

		fmt.Printf("Added week of %s (%d weeks tracked)\n", result.Week.WeekOf, len(result.Weeks))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addWeekOf, "week-of", "w", "", "any date inside the week to add (YYYY-MM-DD)")
}
