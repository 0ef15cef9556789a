package render

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/fahrplan/internal/schedule"
)

// Format selects an output style.
type Format int

const (
	// FormatTable draws a bordered grid, rooms as columns and
	// five-minute slots as rows.
	FormatTable Format = iota
	// FormatList prints a chronological bullet list per day.
	FormatList
	// FormatProportional prints duration bars per day.
	FormatProportional
)

// ParseFormat maps a user-supplied name to a Format. Unknown names
// fall back to the table so a typo still renders something useful.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list":
		return FormatList
	case "proportional", "bars":
		return FormatProportional
	default:
		return FormatTable
	}
}

func (f Format) String() string {
	switch f {
	case FormatList:
		return "list"
	case FormatProportional:
		return "proportional"
	default:
		return "table"
	}
}

// Column width bounds for the table format.
const (
	DefaultColWidth = 20
	MinColWidth     = 8
)

// Options tunes the renderers.
type Options struct {
	// ColWidth is the table column width in cells; zero means
	// DefaultColWidth.
	ColWidth int
}

// Render produces the schedule in the requested format.
func Render(s *schedule.Schedule, f Format, opts Options) (string, error) {
	colWidth := opts.ColWidth
	if colWidth == 0 {
		colWidth = DefaultColWidth
	}
	if colWidth < MinColWidth {
		return "", fmt.Errorf("column width %d is below the minimum of %d", colWidth, MinColWidth)
	}

	switch f {
	case FormatList:
		return renderList(s), nil
	case FormatProportional:
		return renderProportional(s), nil
	default:
		return renderTable(s, colWidth)
	}
}

// FitColWidth picks the widest column width that keeps a day's grid
// within termWidth cells, clamped to the minimum. rooms is the widest
// room count across the schedule's days.
func FitColWidth(termWidth, rooms int) int {
	if rooms < 1 {
		return DefaultColWidth
	}
	// Row layout: 8-cell time gutter, one border per column plus the
	// closing border.
	w := (termWidth - 8 - rooms - 1) / rooms
	if w > DefaultColWidth {
		return DefaultColWidth
	}
	if w < MinColWidth {
		return MinColWidth
	}
	return w
}
