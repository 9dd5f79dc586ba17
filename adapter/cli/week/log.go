package week

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/fitweek/adapter/cli"
	"github.com/felixgeelhaar/fitweek/internal/tracking/application/commands"
	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

var (
	logWeekOf string
	logWeight string
	logKcal   string
	logProt   string
)

var logCmd = &cobra.Command{
	Use:   "log [day]",
	Short: "Log a day's weight and nutrition",
	Long: `Record weight, calories, and protein for one day of a tracked week.
Days are mon, tue, wed, thu, fri, sat, sun. Only the flags you pass
are changed; passing an empty value clears the field.

Examples:
  fitweek week log mon --week-of 2025-12-08 --weight 78.4 --kcal 2650 --protein 160
  fitweek week log wed --week-of 2025-12-08 --weight ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.LogDayHandler == nil {
			return fmt.Errorf("week handler not configured")
		}

		logCommand := commands.LogDayCommand{
			WeekOf: logWeekOf,
			Day:    domain.DayID(args[0]),
		}
		if cmd.Flags().Changed("weight") {
			logCommand.WeightKg = &logWeight
		}
		if cmd.Flags().Changed("kcal") {
			logCommand.Calories = &logKcal
		}
		if cmd.Flags().Changed("protein") {
			logCommand.ProteinG = &logProt
		}

		result, err := app.LogDayHandler.Handle(cmd.Context(), logCommand)
		if err != nil {
			return fmt.Errorf("failed to log day: %w", err)
		}

		fmt.Printf("Logged %s for week of %s\n", args[0], result.Week.WeekOf)
		if result.Metrics != nil {
			fmt.Printf("  avg weight: %s kg\n", cli.FormatOptFloat(result.Metrics.AvgWeightKg, 2))
			fmt.Printf("  avg kcal:   %s\n", cli.FormatOptFloat(result.Metrics.AvgCalories, 0))
			fmt.Printf("  avg prot:   %s g\n", cli.FormatOptFloat(result.Metrics.AvgProteinG, 0))
		}
		return nil
	},
}

func init() {
	logCmd.Flags().StringVarP(&logWeekOf, "week-of", "w", "", "any date inside the target week (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logWeight, "weight", "", "weight in kg (empty clears)")
	logCmd.Flags().StringVar(&logKcal, "kcal", "", "calories (empty clears)")
	logCmd.Flags().StringVar(&logProt, "protein", "", "protein in grams (empty clears)")
	_ = logCmd.MarkFlagRequired("week-of")
}
