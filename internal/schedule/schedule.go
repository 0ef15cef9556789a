// Package schedule defines the conference schedule domain types for fahrplan.
package schedule

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Validation errors.
var (
	ErrEndBeforeStart  = errors.New("talk end must be after its start")
	ErrRaggedDuration  = errors.New("talk duration must be a positive multiple of 5 minutes")
	ErrEmptyRoomName   = errors.New("room name cannot be empty")
	ErrUntitledTalk    = errors.New("talk needs a submission title or a break description")
	ErrDoubleBooked    = errors.New("room has overlapping talks")
	ErrUnknownFileType = errors.New("unsupported schedule file type")
)

// SlotMinutes is the granularity of the rendering time axis.
const SlotMinutes = 5

// TickMinutes is the spacing of labelled tick instants on the time axis.
const TickMinutes = 30

// Submission carries the public metadata of an accepted talk.
// Breaks have no submission.
type Submission struct {
	Title    string
	Speakers string // display names, may be empty
	Locale   string // 2-letter content locale, e.g. "en"
}

// Talk is a scheduled, timed item in one room: a presentation when
// Submission is set, otherwise a break described by Description.
type Talk struct {
	Code        string // stable identifier supplied by the schedule source
	Start       time.Time
	End         time.Time
	Submission  *Submission
	Description string
	Room        *Room // back-reference, set by Room.AddTalk
}

// Duration returns the talk length in minutes.
func (t *Talk) Duration() int {
	return int(t.End.Sub(t.Start).Minutes())
}

// Slots returns the number of 5-minute slots the talk spans.
func (t *Talk) Slots() int {
	return t.Duration() / SlotMinutes
}

// IsBreak reports whether the talk is a break rather than a presentation.
func (t *Talk) IsBreak() bool {
	return t.Submission == nil
}

// Title returns the submission title, or the break description.
func (t *Talk) Title() string {
	if t.Submission != nil {
		return t.Submission.Title
	}
	return t.Description
}

// Validate checks the talk's time-slot invariants.
func (t *Talk) Validate() error {
	if !t.End.After(t.Start) {
		return fmt.Errorf("%w: %q (%s..%s)", ErrEndBeforeStart, t.Title(),
			t.Start.Format("15:04"), t.End.Format("15:04"))
	}
	d := t.Duration()
	if d <= 0 || d%SlotMinutes != 0 {
		return fmt.Errorf("%w: %q is %d minutes", ErrRaggedDuration, t.Title(), d)
	}
	if t.Submission == nil && t.Description == "" {
		return ErrUntitledTalk
	}
	return nil
}

// Room holds one room's talks for a single day, sorted by start time.
type Room struct {
	Name  string
	Talks []*Talk
}

// AddTalk inserts a talk, sets its room back-reference and keeps the
// slice ordered by start time. Callers guarantee rooms are never
// double-booked; Validate reports violations.
func (r *Room) AddTalk(t *Talk) {
	t.Room = r
	r.Talks = append(r.Talks, t)
	slices.SortStableFunc(r.Talks, func(a, b *Talk) int {
		return a.Start.Compare(b.Start)
	})
}

// Validate checks every talk and the no-double-booking precondition.
func (r *Room) Validate() error {
	if r.Name == "" {
		return ErrEmptyRoomName
	}
	for _, t := range r.Talks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("room %q: %w", r.Name, err)
		}
	}
	for i := 1; i < len(r.Talks); i++ {
		prev, cur := r.Talks[i-1], r.Talks[i]
		if cur.Start.Before(prev.End) {
			return fmt.Errorf("%w: %q overlaps %q in %q",
				ErrDoubleBooked, prev.Title(), cur.Title(), r.Name)
		}
	}
	return nil
}

// Day bundles all rooms' talks for one calendar day.
type Day struct {
	Date time.Time // midnight of the day, any location
	// FirstStart and LastEnd bound the rendered time axis. Zero values
	// mean "derive from the talks".
	FirstStart time.Time
	LastEnd    time.Time
	Rooms      []*Room
}

// Talks returns every talk of the day across all rooms.
func (d *Day) Talks() []*Talk {
	var out []*Talk
	for _, r := range d.Rooms {
		out = append(out, r.Talks...)
	}
	return out
}

// Bounds returns the day's rendering window. It prefers the declared
// FirstStart/LastEnd and falls back to the earliest start and latest
// end across all talks. ok is false when the day holds no talks.
func (d *Day) Bounds() (start, end time.Time, ok bool) {
	talks := d.Talks()
	if len(talks) == 0 {
		return time.Time{}, time.Time{}, false
	}
	start = talks[0].Start
	end = talks[0].End
	for _, t := range talks[1:] {
		if t.Start.Before(start) {
			start = t.Start
		}
		if t.End.After(end) {
			end = t.End
		}
	}
	if !d.FirstStart.IsZero() {
		start = d.FirstStart
	}
	if !d.LastEnd.IsZero() {
		end = d.LastEnd
	}
	return start, end, true
}

// Schedule is a released conference schedule: date-ordered days.
type Schedule struct {
	Title   string
	Version string
	Days    []*Day
}

// SortDays orders the days chronologically.
func (s *Schedule) SortDays() {
	slices.SortStableFunc(s.Days, func(a, b *Day) int {
		return a.Date.Compare(b.Date)
	})
}

// Validate checks every room of every day. A failed check means the
// input data is corrupt; rendering it would silently produce a broken
// grid, so loading fails loudly instead.
func (s *Schedule) Validate() error {
	for _, d := range s.Days {
		for _, r := range d.Rooms {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("day %s: %w", d.Date.Format("2006-01-02"), err)
			}
		}
	}
	return nil
}

// TalkCount returns the total number of talks in the schedule.
func (s *Schedule) TalkCount() int {
	n := 0
	for _, d := range s.Days {
		n += len(d.Talks())
	}
	return n
}
