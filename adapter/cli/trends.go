package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/fitweek/internal/tracking/application/queries"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show week-over-week trends",
	Long: `Display one row per tracked week, oldest first, with the weekly
averages and the weight change against the previous week that has
weight data.

Examples:
  fitweek trends`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.GetTrendsHandler == nil {
			return fmt.Errorf("trends handler not configured")
		}

		result, err := app.GetTrendsHandler.Handle(cmd.Context(), queries.GetTrendsQuery{})
		if err != nil {
			return fmt.Errorf("failed to load trends: %w", err)
		}

		if len(result.Trends) == 0 {
			fmt.Println("No weeks tracked yet.")
			return nil
		}

		fmt.Printf("\n  %-12s %10s %10s %10s %10s %9s\n",
			"WEEK", "WEIGHT", "Δ KG", "Δ %", "KCAL", "PROT g/kg")
		fmt.Println("  " + strings.Repeat("-", 64))

		for _, t := range result.Trends {
			fmt.Printf("  %-12s %10s %10s %10s %10s %9s\n",
				t.WeekOf,
				FormatOptFloat(t.AvgWeightKg, 2),
				FormatSignedFloat(t.WeightChangeVsPrevKg, 2),
				FormatSignedFloat(t.WeightChangeVsPrevPercent, 2),
				FormatOptFloat(t.AvgCalories, 0),
				FormatOptFloat(t.AvgProteinPerKg, 2),
			)
		}

		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trendsCmd)
}
