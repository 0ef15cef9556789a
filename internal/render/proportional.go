package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/javiermolinar/fahrplan/internal/schedule"
)

// renderProportional renders each day as a left-aligned bar chart: one
// line per talk, the bar length proportional to the talk's duration.
// A glance shows where the long sessions sit without reading a grid.
func renderProportional(s *schedule.Schedule) string {
	var b strings.Builder
	for _, day := range s.Days {
		talks := day.Talks()
		if len(talks) == 0 {
			continue
		}
		slices.SortStableFunc(talks, func(x, y *schedule.Talk) int {
			if cmp := x.Start.Compare(y.Start); cmp != 0 {
				return cmp
			}
			return strings.Compare(sortTitle(x), sortTitle(y))
		})

		maxCells := 1
		for _, t := range talks {
			if c := barCells(t); c > maxCells {
				maxCells = c
			}
		}

		b.WriteString("\n" + spanDate(day.Date.Format("2006-01-02")) + "\n")
		for _, t := range talks {
			cells := barCells(t)
			bar := strings.Repeat("█", cells) + strings.Repeat("░", maxCells-cells)
			fmt.Fprintf(&b, "%s %s %s (%s); in %s\n",
				spanDate(t.Start.Format("15:04")), bar,
				t.Title(), formatDuration(t.Duration()), t.Room.Name)
		}
	}
	return b.String()
}

// barCells maps a duration to bar cells: one per started quarter hour.
func barCells(t *schedule.Talk) int {
	cells := (t.Duration() + 14) / 15
	if cells < 1 {
		cells = 1
	}
	return cells
}

// formatDuration renders minutes as "45m" or "1h30m".
func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}
