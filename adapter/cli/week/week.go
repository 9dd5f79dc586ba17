// Package week groups the commands that manage individual tracked weeks.
package week

import (
	"github.com/spf13/cobra"
)

// Cmd is the week command group
var Cmd = &cobra.Command{
	Use:   "week",
	Short: "Manage tracked weeks",
	Long:  `Add weeks, log daily weight and nutrition, and edit weekly training fields.`,
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(logCmd)
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(listCmd)
}
