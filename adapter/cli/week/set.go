package week

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/fitweek/adapter/cli"
	"github.com/felixgeelhaar/fitweek/internal/tracking/application/commands"
)

var (
	setWeekOf   string
	setSteps    string
	setSets     string
	setVolume   string
	setTraining string
	setNotes    string
	setOther    string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit a week's training fields",
	Long: `Edit the week-level fields of a tracked week: average steps per day,
total sets, total training volume, and the free-text notes. Only the
flags you pass are changed; passing an empty value clears the field.

Examples:
  fitweek week set --week-of 2025-12-08 --steps 10500 --sets 42
  fitweek week set --week-of 2025-12-08 --training "3x Full Body" --notes "Deload"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.UpdateWeekHandler == nil {
			return fmt.Errorf("week handler not configured")
		}

		setCommand := commands.UpdateWeekCommand{WeekOf: setWeekOf}
		if cmd.Flags().Changed("steps") {
			setCommand.AvgStepsPerDay = &setSteps
		}
		if cmd.Flags().Changed("sets") {
			setCommand.TotalSets = &setSets
		}
		if cmd.Flags().Changed("volume") {
			setCommand.TotalVolumeKg = &setVolume
		}
		if cmd.Flags().Changed("training") {
			setCommand.TrainingSessionsDescription = &setTraining
		}
		if cmd.Flags().Changed("notes") {
			setCommand.Notes = &setNotes
		}
		if cmd.Flags().Changed("other-notes") {
			setCommand.OtherNotes = &setOther
		}

		result, err := app.UpdateWeekHandler.Handle(cmd.Context(), setCommand)
		if err != nil {
			return fmt.Errorf("failed to update week: %w", err)
		}

		fmt.Printf("Updated week of %s\n", result.Week.WeekOf)
		return nil
	},
}

func init() {
	setCmd.Flags().StringVarP(&setWeekOf, "week-of", "w", "", "any date inside the target week (YYYY-MM-DD)")
	setCmd.Flags().StringVar(&setSteps, "steps", "", "average steps per day (empty clears)")
	setCmd.Flags().StringVar(&setSets, "sets", "", "total working sets (empty clears)")
	setCmd.Flags().StringVar(&setVolume, "volume", "", "total training volume in kg (empty clears)")
	setCmd.Flags().StringVar(&setTraining, "training", "", "training sessions description (empty clears)")
	setCmd.Flags().StringVar(&setNotes, "notes", "", "weekly notes (empty clears)")
	setCmd.Flags().StringVar(&setOther, "other-notes", "", "additional notes (empty clears)")
	_ = setCmd.MarkFlagRequired("week-of")
}
