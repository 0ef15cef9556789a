package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/fahrplan/internal/schedule"
)

// card is the rendered body of one talk, consumed one line per grid
// row. The lines are laid out once; next advances a cursor and keeps
// returning blank padding after the last line, so a card can never
// desynchronize the rows around it.
type card struct {
	lines []string
	pos   int
	width int
}

// next returns the card's line for the current grid row and advances.
func (c *card) next() string {
	if c.pos < len(c.lines) {
		line := c.lines[c.pos]
		c.pos++
		return line
	}
	return strings.Repeat(" ", c.width)
}

// newCard lays out a talk inside a column of colWidth cells. The card
// body spans height = duration/5 - 1 rows plus one, matching the rows
// between the talk's opening and closing border lines.
func newCard(t *schedule.Talk, colWidth int) *card {
	empty := strings.Repeat(" ", colWidth)
	textWidth := colWidth - 4
	height := t.Slots() - 1

	titleLines := wrap(t.Title(), textWidth)

	// Long titles keep at most height-4 lines so the speaker block
	// still fits; short talks keep a single line. The overflow is
	// folded onto the last kept line and ellipsized.
	maxTitleLines := 1
	if height > 5 {
		maxTitleLines = height - 4
	}
	if len(titleLines) > maxTitleLines {
		rest := strings.Join(titleLines[maxTitleLines:], " ")
		titleLines = titleLines[:maxTitleLines]
		last := titleLines[len(titleLines)-1] + " " + rest
		titleLines[len(titleLines)-1] = truncate(last, textWidth)
	}

	heightAfterTitle := height - len(titleLines)

	// On tight cards the speaker and locale share one line, costing
	// the speaker four cells of width.
	joined := heightAfterTitle <= 3 && t.Submission != nil

	speakers := ""
	locale := ""
	if t.Submission != nil {
		speakers = t.Submission.Speakers
		locale = padExact(t.Submission.Locale, 2)
	}
	speakerWidth := textWidth
	if joined {
		speakerWidth = textWidth - 4
	}
	speakers = truncate(speakers, speakerWidth)

	var lines []string
	if height > 4 {
		lines = append(lines, empty)
	}
	for _, l := range titleLines {
		lines = append(lines, "  "+spanTitle(runewidth.FillRight(l, textWidth))+"  ")
	}
	if heightAfterTitle > 2 {
		lines = append(lines, empty)
	}
	switch {
	case speakers != "" && joined:
		lines = append(lines,
			"  "+spanSpeaker(runewidth.FillRight(speakers, speakerWidth))+"  "+spanLocale(locale)+"  ")
	case speakers != "":
		lines = append(lines, "  "+spanSpeaker(runewidth.FillRight(speakers, textWidth))+"  ")
		if heightAfterTitle > 4 {
			lines = append(lines, empty)
		}
		lines = append(lines, localeLine(locale, textWidth))
	case t.Submission != nil:
		lines = append(lines, localeLine(locale, textWidth))
	}
	for len(lines) < height+1 {
		lines = append(lines, empty)
	}
	// Degenerate cards (talks shorter than ten minutes) cannot carry
	// their full body; drop trailing lines rather than overrun the row.
	if len(lines) > height+1 {
		lines = lines[:height+1]
	}

	return &card{lines: lines, width: colWidth}
}

// localeLine right-aligns the locale tag within the card body.
func localeLine(locale string, textWidth int) string {
	return strings.Repeat(" ", textWidth-2) + "  " + spanLocale(locale) + "  "
}

// wrap greedily word-wraps s to lines of at most width display cells.
// A single word wider than a full line is hard-split.
func wrap(s string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		for runewidth.StringWidth(word) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			head := runewidth.Truncate(word, width, "")
			lines = append(lines, head)
			word = strings.TrimPrefix(word, head)
		}
		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// truncate cuts s to at most limit display cells, marking the cut with
// a trailing ellipsis. Strings already within the limit pass through,
// so truncating twice changes nothing.
func truncate(s string, limit int) string {
	if runewidth.StringWidth(s) <= limit {
		return s
	}
	return runewidth.Truncate(s, limit-1, "") + "…"
}

// padExact pads or cuts s to exactly width display cells.
func padExact(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}
