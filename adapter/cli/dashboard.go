package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/fitweek/internal/tracking/application/queries"
	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the weekly dashboard",
	Long: `Display all tracked weeks, newest first, with their daily logs,
weekly averages, and week-over-week weight changes.

Examples:
  fitweek dashboard`,
	Aliases: []string{"dash"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.GetDashboardHandler == nil {
			return fmt.Errorf("dashboard handler not configured")
		}

		result, err := app.GetDashboardHandler.Handle(cmd.Context(), queries.GetDashboardQuery{})
		if err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}

		fmt.Println("\n  🏋️  WEEKLY TRACKER")
		fmt.Println(strings.Repeat("═", 64))

		if len(result.Cards) == 0 {
			fmt.Println("    No weeks tracked yet.")
			fmt.Println("    Use 'fitweek week add' to start tracking")
			fmt.Println()
			return nil
		}

		for _, card := range result.Cards {
			printWeekCard(card)
		}

		fmt.Println()
		return nil
	},
}

func printWeekCard(card queries.WeekCard) {
	week := card.Entry
	trend := card.Trend

	fmt.Printf("\n  📅 Week of %s\n", week.WeekOf)
	fmt.Println(strings.Repeat("-", 64))

	for _, id := range domain.DayIDs {
		day := week.Days[id]
		if day.IsEmpty() {
			continue
		}
		fmt.Printf("    %-4s %8s kg %8s kcal %6s g protein\n",
			strings.ToUpper(string(id)),
			FormatOptFloat(day.WeightKg, 1),
			FormatOptInt(day.Calories),
			FormatOptInt(day.ProteinG),
		)
	}

	fmt.Printf("    Weight   avg %s kg   min %s   max %s",
		FormatOptFloat(trend.AvgWeightKg, 2),
		FormatOptFloat(trend.MinWeightKg, 1),
		FormatOptFloat(trend.MaxWeightKg, 1),
	)
	if trend.WeightChangeVsPrevKg != nil {
		fmt.Printf("   %s kg", FormatSignedFloat(trend.WeightChangeVsPrevKg, 2))
		if trend.WeightChangeVsPrevPercent != nil {
			fmt.Printf(" (%s%%)", FormatSignedFloat(trend.WeightChangeVsPrevPercent, 2))
		}
	}
	fmt.Println()

	fmt.Printf("    Intake   avg %s kcal   %s g protein   %s g/kg\n",
		FormatOptFloat(trend.AvgCalories, 0),
		FormatOptFloat(trend.AvgProteinG, 0),
		FormatOptFloat(trend.AvgProteinPerKg, 2),
	)
	fmt.Printf("    Steps    %s/day   Sets %s   Volume %s kg\n",
		FormatOptInt(week.AvgStepsPerDay),
		FormatOptInt(week.TotalSets),
		FormatOptFloat(week.TotalVolumeKg, 1),
	)

	if week.TrainingSessionsDescription != "" {
		fmt.Printf("    Training: %s\n", week.TrainingSessionsDescription)
	}
	if week.Notes != "" {
		fmt.Printf("    Notes: %s\n", week.Notes)
	}
	if week.OtherNotes != "" {
		fmt.Printf("    Other: %s\n", week.OtherNotes)
	}
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
