package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/fahrplan/internal/schedule"
)

func talkAt(t *testing.T, start string, minutes int, sub *schedule.Submission, desc string) *schedule.Talk {
	t.Helper()
	at, err := time.Parse("2006-01-02 15:04", start)
	if err != nil {
		t.Fatalf("parsing %q: %v", start, err)
	}
	return &schedule.Talk{
		Start:       at,
		End:         at.Add(time.Duration(minutes) * time.Minute),
		Submission:  sub,
		Description: desc,
	}
}

func drain(c *card) []string {
	lines := make([]string, 0, len(c.lines))
	for range c.lines {
		lines = append(lines, c.next())
	}
	return lines
}

func TestCardLineCount(t *testing.T) {
	DisableColor()
	tests := []struct {
		name    string
		minutes int
		sub     *schedule.Submission
		want    int
	}{
		{"half hour talk", 30, &schedule.Submission{Title: "Opening", Speakers: "Ada Lovelace", Locale: "en"}, 6},
		{"hour talk", 60, &schedule.Submission{Title: "Deep Dive", Speakers: "Grace Hopper", Locale: "de"}, 12},
		{"ten minute lightning", 10, &schedule.Submission{Title: "Hi", Speakers: "Ada", Locale: "en"}, 2},
		{"five minute degenerate", 5, &schedule.Submission{Title: "Blink", Speakers: "Ada", Locale: "en"}, 1},
		{"half hour break", 30, nil, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			talk := talkAt(t, "2026-08-23 09:00", tt.minutes, tt.sub, "Coffee")
			c := newCard(talk, DefaultColWidth)
			if got := len(c.lines); got != tt.want {
				t.Errorf("got %d lines, want %d", got, tt.want)
			}
		})
	}
}

func TestCardLineWidth(t *testing.T) {
	EnableColor()
	defer DisableColor()

	long := &schedule.Submission{
		Title:    "A Very Long Talk Title That Definitely Wraps Across Multiple Lines",
		Speakers: "Margaret Hamilton, Katherine Johnson, Dorothy Vaughan",
		Locale:   "en",
	}
	for _, minutes := range []int{10, 15, 30, 45, 90} {
		talk := talkAt(t, "2026-08-23 09:00", minutes, long, "")
		c := newCard(talk, DefaultColWidth)
		for i, line := range drain(c) {
			if w := runewidth.StringWidth(ansi.Strip(line)); w != DefaultColWidth {
				t.Errorf("%d minute card line %d: width %d, want %d: %q",
					minutes, i, w, DefaultColWidth, line)
			}
		}
		// Past the last line the card keeps yielding blank padding.
		if got := c.next(); got != strings.Repeat(" ", DefaultColWidth) {
			t.Errorf("exhausted card yielded %q", got)
		}
	}
}

func TestCardHalfHourLayout(t *testing.T) {
	DisableColor()
	talk := talkAt(t, "2026-08-23 09:00", 30,
		&schedule.Submission{Title: "Opening", Speakers: "Ada Lovelace", Locale: "en"}, "")
	got := drain(newCard(talk, DefaultColWidth))
	want := []string{
		"                    ",
		"  Opening           ",
		"                    ",
		"  Ada Lovelace      ",
		"                en  ",
		"                    ",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCardTitleOverflow(t *testing.T) {
	DisableColor()
	sub := &schedule.Submission{
		Title:    "Continuous Deployment Considered As A Performance Art",
		Speakers: "Ada",
		Locale:   "en",
	}
	talk := talkAt(t, "2026-08-23 09:00", 30, sub, "")
	lines := drain(newCard(talk, DefaultColWidth))

	var titleLines []string
	for _, l := range lines {
		if s := strings.TrimSpace(l); s != "" && s != "Ada" && s != "en" {
			titleLines = append(titleLines, s)
		}
	}
	if len(titleLines) != 1 {
		t.Fatalf("want a single title line, got %q", titleLines)
	}
	if !strings.HasSuffix(titleLines[0], "…") {
		t.Errorf("overflowing title %q lacks ellipsis", titleLines[0])
	}
}

func TestCardJoinedSpeakerLocale(t *testing.T) {
	DisableColor()
	// A 20 minute talk has no room for separate speaker and locale
	// lines; they share one.
	talk := talkAt(t, "2026-08-23 09:00", 20,
		&schedule.Submission{Title: "Q&A", Speakers: "Ada Lovelace", Locale: "de"}, "")
	lines := drain(newCard(talk, DefaultColWidth))
	joined := ""
	for _, l := range lines {
		if strings.Contains(l, "Ada") {
			joined = l
		}
	}
	if joined == "" {
		t.Fatal("no speaker line emitted")
	}
	if !strings.Contains(joined, "de") {
		t.Errorf("speaker line %q does not carry the locale", joined)
	}
}

func TestTruncateIdempotent(t *testing.T) {
	tests := []struct {
		in    string
		limit int
	}{
		{"short", 16},
		{"exactly sixteen!", 16},
		{"a rather long string that will not fit", 16},
		{"ünïcödé titles wörk töö", 12},
	}
	for _, tt := range tests {
		once := truncate(tt.in, tt.limit)
		if w := runewidth.StringWidth(once); w > tt.limit {
			t.Errorf("truncate(%q, %d) width %d exceeds limit", tt.in, tt.limit, w)
		}
		if twice := truncate(once, tt.limit); twice != once {
			t.Errorf("truncate not idempotent: %q then %q", once, twice)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "Opening", 16, []string{"Opening"}},
		{"two lines", "Continuous Deployment Art", 16, []string{"Continuous", "Deployment Art"}},
		{"empty", "", 16, []string{""}},
		{"giant word", "Donaudampfschiff", 8, []string{"Donaudam", "pfschiff"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrap(tt.in, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
