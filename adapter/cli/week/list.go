package week

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/fitweek/adapter/cli"
	"github.com/felixgeelhaar/fitweek/internal/tracking/application/queries"
	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked weeks",
	Long: `List all tracked weeks, oldest first, with a summary of what has
been logged in each.

Examples:
  fitweek week list`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListWeeksHandler == nil {
			return fmt.Errorf("week handler not configured")
		}

		result, err := app.ListWeeksHandler.Handle(cmd.Context(), queries.ListWeeksQuery{})
		if err != nil {
			return fmt.Errorf("failed to list weeks: %w", err)
		}

		if len(result.Weeks) == 0 {
			fmt.Println("No weeks tracked yet.")
			return nil
		}

		fmt.Printf("\n  %-12s %12s %8s %8s %12s\n", "WEEK", "DAYS LOGGED", "STEPS", "SETS", "VOLUME kg")
		fmt.Println("  " + strings.Repeat("-", 56))
		for _, w := range result.Weeks {
			logged := 0
			for _, id := range domain.DayIDs {
				if !w.Days[id].IsEmpty() {
					logged++
				}
			}
			fmt.Printf("  %-12s %12s %8s %8s %12s\n",
				w.WeekOf,
				fmt.Sprintf("%d/7", logged),
				cli.FormatOptInt(w.AvgStepsPerDay),
				cli.FormatOptInt(w.TotalSets),
				cli.FormatOptFloat(w.TotalVolumeKg, 1),
			)
		}
		fmt.Println()
		return nil
	},
}
