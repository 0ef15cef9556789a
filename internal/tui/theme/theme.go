// Package theme provides the color themes for the interactive browser.
// Themes are TOML palettes compiled into the binary.
package theme

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embedded embed.FS

// Theme is a named set of terminal colors. Values are hex colors or
// ANSI palette indices, whatever lipgloss accepts.
type Theme struct {
	Name      string `toml:"name"`
	Text      string `toml:"text"`
	Muted     string `toml:"muted"`
	Accent    string `toml:"accent"`
	Border    string `toml:"border"`
	Highlight string `toml:"highlight"`
}

// Load returns the embedded theme with the given name.
func Load(name string) (Theme, error) {
	data, err := embedded.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)",
			name, strings.Join(Names(), ", "))
	}
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	return t, nil
}

// Names lists the embedded theme names.
func Names() []string {
	entries, err := embedded.ReadDir("embedded")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}
