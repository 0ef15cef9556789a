package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/teambition/rrule-go"

	"github.com/javiermolinar/fahrplan/internal/schedule"
)

// roomState captures what is happening in one room at one instant of
// the time axis. At most one talk can start, end and run at the same
// instant; a back-to-back pair contributes both an ending and a
// starting talk.
type roomState struct {
	starting *schedule.Talk
	ending   *schedule.Talk
	running  *schedule.Talk
}

func (s roomState) event() bool {
	return s.starting != nil || s.ending != nil
}

// renderTable renders every day of the schedule as a bordered grid:
// one column per room, one row per five minutes.
func renderTable(s *schedule.Schedule, colWidth int) (string, error) {
	var b strings.Builder
	for _, day := range s.Days {
		b.WriteString("\n" + spanDate(day.Date.Format("2006-01-02")) + "\n")
		table, err := tableForDay(day, colWidth)
		if err != nil {
			return "", err
		}
		if table == "" {
			b.WriteString("No talks on this day.\n")
			continue
		}
		b.WriteString(table)
	}
	return b.String(), nil
}

// tableForDay builds one day's grid. Days without talks yield "".
func tableForDay(day *schedule.Day, colWidth int) (string, error) {
	start, end, ok := day.Bounds()
	if !ok {
		return "", nil
	}

	axis, err := timeAxis(start, end)
	if err != nil {
		return "", err
	}
	ticks, err := tickInstants(start, end)
	if err != nil {
		return "", err
	}

	cards := make(map[*schedule.Talk]*card)
	cardFor := func(t *schedule.Talk) *card {
		c, ok := cards[t]
		if !ok {
			c = newCard(t, colWidth)
			cards[t] = c
		}
		return c
	}

	var b strings.Builder
	b.WriteString(headerRow(day.Rooms, colWidth))
	b.WriteByte('\n')
	for _, at := range axis {
		states := make([]roomState, len(day.Rooms))
		for i, room := range day.Rooms {
			states[i] = classify(room, at)
		}

		if ticks[at.Unix()] {
			b.WriteString(at.Format("15:04") + " --")
		} else {
			b.WriteString("        ")
		}
		b.WriteString(gridRow(states, colWidth, ticks[at.Unix()], cardFor))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// timeAxis expands the day's window into five-minute instants,
// inclusive of both ends so the last row can close the final talks.
func timeAxis(start, end time.Time) ([]time.Time, error) {
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.MINUTELY,
		Interval: schedule.SlotMinutes,
		Dtstart:  start,
		Until:    end,
	})
	if err != nil {
		return nil, fmt.Errorf("building time axis: %w", err)
	}
	return r.All(), nil
}

// tickInstants marks the half-hour instants that get a time label and
// a dashed guide row.
func tickInstants(start, end time.Time) (map[int64]bool, error) {
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.HOURLY,
		Byminute: []int{0, schedule.TickMinutes},
		Dtstart:  start,
		Until:    end,
	})
	if err != nil {
		return nil, fmt.Errorf("building tick marks: %w", err)
	}
	ticks := make(map[int64]bool)
	for _, at := range r.All() {
		ticks[at.Unix()] = true
	}
	return ticks, nil
}

func classify(room *schedule.Room, at time.Time) roomState {
	var st roomState
	for _, t := range room.Talks {
		if t.Start.Equal(at) {
			st.starting = t
		}
		if t.End.Equal(at) {
			st.ending = t
		}
		if t.Start.Before(at) && t.End.After(at) {
			st.running = t
		}
	}
	return st
}

// headerRow lists the room names over their columns, aligned with the
// time gutter.
func headerRow(rooms []*schedule.Room, colWidth int) string {
	names := make([]string, len(rooms))
	for i, r := range rooms {
		names[i] = runewidth.FillRight(truncate(r.Name, colWidth-2), colWidth-2)
	}
	return "        | " + strings.Join(names, " | ")
}

// gridRow assembles one time slot's row: the left border, each room's
// cell, the boundaries between neighbours and the right border.
func gridRow(states []roomState, colWidth int, tick bool, cardFor func(*schedule.Talk) *card) string {
	fill := " "
	if tick {
		fill = "-"
	}
	rule := strings.Repeat(string(horizontal), colWidth)

	var b strings.Builder

	first := states[0]
	switch {
	case first.event():
		b.WriteRune(separator(first.ending != nil, first.starting != nil, false, false))
		b.WriteString(rule)
	case first.running != nil:
		b.WriteRune(vertical)
		b.WriteString(cardFor(first.running).next())
	default:
		b.WriteString(strings.Repeat(fill, colWidth+1))
	}

	for i := 1; i < len(states); i++ {
		left, right := states[i-1], states[i]
		b.WriteString(boundary(left, right, fill))
		switch {
		case right.running != nil:
			b.WriteString(cardFor(right.running).next())
		case right.event():
			b.WriteString(rule)
		default:
			b.WriteString(strings.Repeat(fill, colWidth))
		}
	}

	last := states[len(states)-1]
	switch {
	case last.event():
		b.WriteRune(separator(false, false, last.starting != nil, last.ending != nil))
	case last.running != nil:
		b.WriteRune(vertical)
	default:
		b.WriteString(fill)
	}
	return b.String()
}

// boundary picks the single rune between two room columns. A running
// talk's border trumps the neighbour's junction so cards stay sealed.
func boundary(left, right roomState, fill string) string {
	switch {
	case left.running != nil && right.event():
		return "├"
	case right.running != nil && left.event():
		return "┤"
	case left.event() || right.event():
		return string(separator(right.ending != nil, right.starting != nil,
			left.starting != nil, left.ending != nil))
	case left.running != nil || right.running != nil:
		return string(vertical)
	default:
		return fill
	}
}
