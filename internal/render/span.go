// Package render turns a resolved conference schedule into fixed-width
// terminal text. All renderers are pure: they hold no state across
// calls and may run concurrently for different schedules.
package render

import (
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

// Styled spans used across the renderers. Layout code always pads text
// to its cell width first and styles afterwards, so escape sequences
// never count against a cell.
var (
	// Dates and start times: yellow, matching the list gutter.
	colorDate = color.New(color.FgYellow)

	// Talk titles: bold.
	colorTitle = color.New(color.Bold)

	// Speaker names: yellow.
	colorSpeaker = color.New(color.FgYellow)

	// Locale tags: muted grey.
	colorLocale = color.New(color.FgWhite, color.Faint)

	// Section headers (schedule title): bold.
	colorHeader = color.New(color.Bold)
)

// DisableColor disables all styled output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables styled output (if the terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// AutoColor honours NO_COLOR and friends from the environment.
func AutoColor() {
	if termenv.EnvNoColor() {
		color.NoColor = true
	}
}

func spanDate(s string) string {
	return colorDate.Sprint(s)
}

func spanTitle(s string) string {
	return colorTitle.Sprint(s)
}

func spanSpeaker(s string) string {
	return colorSpeaker.Sprint(s)
}

func spanLocale(s string) string {
	return colorLocale.Sprint(s)
}

// SpanHeader formats a top-level heading, e.g. the conference title.
func SpanHeader(s string) string {
	return colorHeader.Sprint(s)
}
