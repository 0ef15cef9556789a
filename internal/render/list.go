package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/javiermolinar/fahrplan/internal/schedule"
)

// renderList renders the schedule as a chronological bullet list, one
// section per day. Within a day talks are ordered by start time; at
// equal starts breaks sort before titled talks, then titles
// alphabetically. The sort is stable so room order breaks the
// remaining ties.
func renderList(s *schedule.Schedule) string {
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

		b.WriteString("\n" + spanDate(day.Date.Format("2006-01-02")) + "\n")
		for _, t := range talks {
			b.WriteString("* " + spanDate(t.Start.Format("15:04")) + " ")
			if t.IsBreak() {
				fmt.Fprintf(&b, "%s in %s\n", t.Description, t.Room.Name)
				continue
			}
			speakers := t.Submission.Speakers
			if speakers == "" {
				speakers = "No speakers"
			}
			fmt.Fprintf(&b, "%s, %s (%s); in %s\n",
				t.Submission.Title, speakers, t.Submission.Locale, t.Room.Name)
		}
	}
	return b.String()
}

// sortTitle is the tie-break key: breaks carry no submission and sort
// under the empty string.
func sortTitle(t *schedule.Talk) string {
	if t.Submission != nil {
		return t.Submission.Title
	}
	return ""
}
