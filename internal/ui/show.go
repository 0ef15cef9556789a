package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/fahrplan/internal/render"
	"github.com/javiermolinar/fahrplan/internal/schedule"
)

func (a *App) showCmd() *cobra.Command {
	var (
		format  string
		width   int
		fit     bool
		noColor bool
		toClip  bool
	)
	cmd := &cobra.Command{
		Use:   "show <schedule file>",
		Short: "Render a schedule file",
		Long: `Render a schedule file as a room-by-time grid (the default), a
chronological list (--format list) or duration bars
(--format proportional).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyColor(noColor)

			s, err := schedule.LoadFile(args[0])
			if err != nil {
				return err
			}
			schedule.ApplyDefaultLocale(s, a.cfg.Schedule.DefaultLocale)

			opts := render.Options{ColWidth: width}
			if fit {
				opts.ColWidth = render.FitColWidth(termWidth(), maxRooms(s))
			}

			out, err := render.Render(s, render.ParseFormat(format), opts)
			if err != nil {
				return err
			}
			if s.Title != "" {
				out = render.SpanHeader(s.Title) + "\n" + out
			}

			if toClip {
				if err := clipboard.WriteAll(ansi.Strip(out)); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", a.cfg.Render.Format,
		"output format: table, list or proportional")
	cmd.Flags().IntVarP(&width, "width", "w", a.cfg.Render.ColWidth,
		"grid column width in cells")
	cmd.Flags().BoolVar(&fit, "fit", false,
		"shrink grid columns to fit the terminal width")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")
	cmd.Flags().BoolVarP(&toClip, "copy", "c", false,
		"also copy the plain-text output to the clipboard")
	return cmd
}

// maxRooms returns the widest room count across the schedule's days.
func maxRooms(s *schedule.Schedule) int {
	max := 0
	for _, d := range s.Days {
		if len(d.Rooms) > max {
			max = len(d.Rooms)
		}
	}
	return max
}
