package ui

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/fahrplan/internal/render"
	"github.com/javiermolinar/fahrplan/internal/schedule"
)

func (a *App) infoCmd() *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "info <schedule file>",
		Short: "Summarize a schedule file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyColor(noColor)

			s, err := schedule.LoadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if s.Title != "" {
				fmt.Fprintln(out, render.SpanHeader(s.Title))
			}
			if s.Version != "" {
				fmt.Fprintf(out, "version %s\n", s.Version)
			}
			fmt.Fprintf(out, "%d days, %d talks\n\n", len(s.Days), s.TalkCount())

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, d := range s.Days {
				talks := d.Talks()
				start, end, ok := d.Bounds()
				window := "-"
				if ok {
					window = start.Format("15:04") + ".." + end.Format("15:04")
				}
				fmt.Fprintf(w, "%s\t%d rooms\t%d talks\t%s\n",
					d.Date.Format("2006-01-02"), len(d.Rooms), len(talks), window)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")
	return cmd
}
