package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// The JSON input follows the frab-style interchange layout: a top-level
// "schedule" object with a conference carrying date-ordered days, each
// day carrying rooms, each room carrying talks. Rooms are an array so
// column order survives the round trip.
type jsonFile struct {
	Schedule jsonSchedule `json:"schedule"`
}

type jsonSchedule struct {
	Version    string         `json:"version"`
	Conference jsonConference `json:"conference"`
}

type jsonConference struct {
	Title string    `json:"title"`
	Days  []jsonDay `json:"days"`
}

type jsonDay struct {
	Date     string     `json:"date"`      // YYYY-MM-DD
	DayStart string     `json:"day_start"` // RFC 3339, optional
	DayEnd   string     `json:"day_end"`   // RFC 3339, optional
	Rooms    []jsonRoom `json:"rooms"`
}

type jsonRoom struct {
	Name  string     `json:"name"`
	Talks []jsonTalk `json:"talks"`
}

type jsonTalk struct {
	Code     string       `json:"code"`
	Date     string       `json:"date"`     // RFC 3339 start instant
	Duration string       `json:"duration"` // "HH:MM"
	Title    string       `json:"title"`
	Language string       `json:"language"`
	Break    bool         `json:"break"`
	Persons  []jsonPerson `json:"persons"`
}

type jsonPerson struct {
	PublicName string `json:"public_name"`
}

// LoadJSON reads a frab-style schedule.json file.
func LoadJSON(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule file: %w", err)
	}
	return ParseJSON(data)
}

// ParseJSON decodes and validates a frab-style schedule payload.
func ParseJSON(data []byte) (*Schedule, error) {
	var file jsonFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing schedule json: %w", err)
	}

	s := &Schedule{
		Title:   file.Schedule.Conference.Title,
		Version: file.Schedule.Version,
	}
	for _, jd := range file.Schedule.Conference.Days {
		day, err := buildDay(jd)
		if err != nil {
			return nil, err
		}
		s.Days = append(s.Days, day)
	}
	s.SortDays()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func buildDay(jd jsonDay) (*Day, error) {
	date, err := time.ParseInLocation("2006-01-02", jd.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parsing day date %q: %w", jd.Date, err)
	}
	day := &Day{Date: date}

	if jd.DayStart != "" {
		if day.FirstStart, err = time.Parse(time.RFC3339, jd.DayStart); err != nil {
			return nil, fmt.Errorf("parsing day_start %q: %w", jd.DayStart, err)
		}
	}
	if jd.DayEnd != "" {
		if day.LastEnd, err = time.Parse(time.RFC3339, jd.DayEnd); err != nil {
			return nil, fmt.Errorf("parsing day_end %q: %w", jd.DayEnd, err)
		}
	}

	for _, jr := range jd.Rooms {
		room := &Room{Name: jr.Name}
		for _, jt := range jr.Talks {
			talk, err := buildTalk(jt)
			if err != nil {
				return nil, fmt.Errorf("room %q: %w", jr.Name, err)
			}
			room.AddTalk(talk)
		}
		day.Rooms = append(day.Rooms, room)
	}
	return day, nil
}

func buildTalk(jt jsonTalk) (*Talk, error) {
	start, err := time.Parse(time.RFC3339, jt.Date)
	if err != nil {
		return nil, fmt.Errorf("parsing talk start %q: %w", jt.Date, err)
	}
	minutes, err := parseClockDuration(jt.Duration)
	if err != nil {
		return nil, fmt.Errorf("talk %q: %w", jt.Title, err)
	}

	t := &Talk{
		Code:  jt.Code,
		Start: start,
		End:   start.Add(time.Duration(minutes) * time.Minute),
	}
	if jt.Break {
		t.Description = jt.Title
		return t, nil
	}

	var names []string
	for _, p := range jt.Persons {
		if p.PublicName != "" {
			names = append(names, p.PublicName)
		}
	}
	t.Submission = &Submission{
		Title:    jt.Title,
		Speakers: strings.Join(names, ", "),
		Locale:   jt.Language,
	}
	return t, nil
}

// parseClockDuration converts a frab "HH:MM" duration to minutes.
func parseClockDuration(s string) (int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("duration %q is not in HH:MM format", s)
	}
	hours, err1 := strconv.Atoi(h)
	mins, err2 := strconv.Atoi(m)
	if err1 != nil || err2 != nil || hours < 0 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("duration %q is not in HH:MM format", s)
	}
	return hours*60 + mins, nil
}

// LoadFile loads a schedule from a JSON or ICS file, dispatching on the
// file extension.
func LoadFile(path string) (*Schedule, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".ics", ".ical":
		return LoadICS(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Ext(path))
	}
}
