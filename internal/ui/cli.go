// Package ui implements the fahrplan command line interface.
package ui

import (
	"github.com/spf13/cobra"

	"github.com/javiermolinar/fahrplan/internal/config"
	"github.com/javiermolinar/fahrplan/internal/render"
)

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

// App wires the resolved configuration into the command tree.
type App struct {
	cfg config.Config
}

func NewApp(cfg config.Config) *App {
	return &App{cfg: cfg}
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.rootCmd().Execute()
}

func (a *App) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fahrplan",
		Short: "Render conference schedules in the terminal",
		Long: `fahrplan renders released conference schedules as terminal text:
a bordered grid with one column per room, a chronological list, or
duration bars. It reads frab-style schedule.json files and iCalendar
feeds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		a.showCmd(),
		a.infoCmd(),
		a.browseCmd(),
		a.configCmd(),
		a.versionCmd(),
	)
	return root
}

// applyColor resolves the configured color mode, letting a --no-color
// flag win over everything.
func (a *App) applyColor(noColor bool) {
	if noColor {
		render.DisableColor()
		return
	}
	switch a.cfg.Render.Color {
	case "always":
		render.EnableColor()
	case "never":
		render.DisableColor()
	default:
		render.AutoColor()
	}
}
