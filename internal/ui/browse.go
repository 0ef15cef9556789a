package ui

import (
	"github.com/spf13/cobra"

	"github.com/javiermolinar/fahrplan/internal/render"
	"github.com/javiermolinar/fahrplan/internal/schedule"
	"github.com/javiermolinar/fahrplan/internal/tui"
	"github.com/javiermolinar/fahrplan/internal/tui/theme"
)

func (a *App) browseCmd() *cobra.Command {
	var themeName string
	cmd := &cobra.Command{
		Use:   "browse <schedule file>",
		Short: "Browse a schedule interactively, one day at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schedule.LoadFile(args[0])
			if err != nil {
				return err
			}
			schedule.ApplyDefaultLocale(s, a.cfg.Schedule.DefaultLocale)

			th, err := theme.Load(themeName)
			if err != nil {
				return err
			}
			return tui.Run(s, th, render.ParseFormat(a.cfg.Render.Format))
		},
	}
	cmd.Flags().StringVar(&themeName, "theme", a.cfg.UI.Theme, "color theme")
	return cmd
}
