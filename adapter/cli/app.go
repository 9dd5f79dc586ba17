package cli

import (
	"github.com/felixgeelhaar/fitweek/internal/tracking/application/commands"
	"github.com/felixgeelhaar/fitweek/internal/tracking/application/queries"
)

// App holds the CLI application dependencies.
type App struct {
	// Command Handlers
	AddWeekHandler     *commands.AddWeekHandler
	LogDayHandler      *commands.LogDayHandler
	UpdateWeekHandler  *commands.UpdateWeekHandler
	ImportWeeksHandler *commands.ImportWeeksHandler

	// Query Handlers
	GetDashboardHandler *queries.GetDashboardHandler
	GetTrendsHandler    *queries.GetTrendsHandler
	ListWeeksHandler    *queries.ListWeeksHandler
	ExportWeeksHandler  *queries.ExportWeeksHandler
}

// NewApp creates a new CLI application with the provided handlers.
func NewApp(
	addWeekHandler *commands.AddWeekHandler,
	logDayHandler *commands.LogDayHandler,
	updateWeekHandler *commands.UpdateWeekHandler,
	importWeeksHandler *commands.ImportWeeksHandler,
	getDashboardHandler *queries.GetDashboardHandler,
	getTrendsHandler *queries.GetTrendsHandler,
	listWeeksHandler *queries.ListWeeksHandler,
	exportWeeksHandler *queries.ExportWeeksHandler,
) *App {
	return &App{
		AddWeekHandler:      addWeekHandler,
		LogDayHandler:       logDayHandler,
		UpdateWeekHandler:   updateWeekHandler,
		ImportWeeksHandler:  importWeeksHandler,
		GetDashboardHandler: getDashboardHandler,
		GetTrendsHandler:    getTrendsHandler,
		ListWeeksHandler:    listWeeksHandler,
		ExportWeeksHandler:  exportWeeksHandler,
	}
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
