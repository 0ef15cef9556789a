package schedule

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

// fallbackLocale is used for ICS events that carry no LANGUAGE
// parameter. ApplyDefaultLocale can rewrite it afterwards.
const fallbackLocale = "en"

// LoadICS reads a schedule from an iCalendar file. Each VEVENT becomes
// a talk: LOCATION names the room, SUMMARY is the title, ORGANIZER and
// ATTENDEE common names become the speaker list, and a CATEGORIES value
// containing "break" marks the event as a break.
func LoadICS(path string) (*Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule file: %w", err)
	}
	defer f.Close()
	return ParseICS(f)
}

// ParseICS parses an iCalendar payload into a Schedule.
func ParseICS(r io.Reader) (*Schedule, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing ics: %w", err)
	}

	s := &Schedule{}
	for _, p := range cal.CalendarProperties {
		if p.IANAToken == "NAME" || p.IANAToken == "X-WR-CALNAME" {
			s.Title = p.Value
			break
		}
	}

	// Days and rooms keep first-seen order so the grid's column order
	// follows the feed.
	days := make(map[string]*Day)
	rooms := make(map[string]*Room)

	for _, ve := range cal.Events() {
		talk, location, err := parseEvent(ve)
		if err != nil {
			return nil, err
		}

		dayKey := talk.Start.Format("2006-01-02")
		day, ok := days[dayKey]
		if !ok {
			date := time.Date(talk.Start.Year(), talk.Start.Month(), talk.Start.Day(),
				0, 0, 0, 0, talk.Start.Location())
			day = &Day{Date: date}
			days[dayKey] = day
			s.Days = append(s.Days, day)
		}

		roomKey := dayKey + "\x00" + location
		room, ok := rooms[roomKey]
		if !ok {
			room = &Room{Name: location}
			rooms[roomKey] = room
			day.Rooms = append(day.Rooms, room)
		}
		room.AddTalk(talk)
	}
	s.SortDays()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseEvent(ve *ical.VEvent) (*Talk, string, error) {
	summary := propValue(ve, ical.ComponentPropertySummary)

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, "", fmt.Errorf("event %q: missing or bad DTSTART: %w", summary, err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return nil, "", fmt.Errorf("event %q: missing or bad DTEND: %w", summary, err)
	}

	talk := &Talk{
		Code:  propValue(ve, ical.ComponentPropertyUniqueId),
		Start: start,
		End:   end,
	}

	location := propValue(ve, ical.ComponentPropertyLocation)
	if location == "" {
		location = "Main"
	}

	if isBreakCategory(ve) {
		talk.Description = summary
		return talk, location, nil
	}

	talk.Submission = &Submission{
		Title:    summary,
		Speakers: strings.Join(speakerNames(ve), ", "),
		Locale:   eventLocale(ve),
	}
	return talk, location, nil
}

func propValue(ve *ical.VEvent, name ical.ComponentProperty) string {
	if p := ve.GetProperty(name); p != nil {
		return p.Value
	}
	return ""
}

func isBreakCategory(ve *ical.VEvent) bool {
	for _, p := range ve.GetProperties(ical.ComponentPropertyCategories) {
		for _, c := range strings.Split(p.Value, ",") {
			if strings.EqualFold(strings.TrimSpace(c), "break") {
				return true
			}
		}
	}
	return false
}

// speakerNames collects the ORGANIZER and ATTENDEE common names. A CN
// parameter wins over the raw value (usually a mailto: URI).
func speakerNames(ve *ical.VEvent) []string {
	var names []string
	props := ve.GetProperties(ical.ComponentPropertyOrganizer)
	props = append(props, ve.GetProperties(ical.ComponentPropertyAttendee)...)
	for _, p := range props {
		name := ""
		if cn, ok := p.ICalParameters["CN"]; ok && len(cn) > 0 {
			name = cn[0]
		}
		if name == "" {
			name = strings.TrimPrefix(p.Value, "mailto:")
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func eventLocale(ve *ical.VEvent) string {
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		if lang, ok := p.ICalParameters["LANGUAGE"]; ok && len(lang) > 0 && lang[0] != "" {
			return lang[0]
		}
	}
	return fallbackLocale
}

// ApplyDefaultLocale rewrites the locale of every talk still carrying
// the parser fallback. Used when the config declares a conference-wide
// content locale.
func ApplyDefaultLocale(s *Schedule, locale string) {
	if locale == "" || locale == fallbackLocale {
		return
	}
	for _, d := range s.Days {
		for _, t := range d.Talks() {
			if t.Submission != nil && t.Submission.Locale == fallbackLocale {
				t.Submission.Locale = locale
			}
		}
	}
}
