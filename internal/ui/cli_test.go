package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/fahrplan/internal/config"
)

const fixtureJSON = `{
  "schedule": {
    "version": "1.0",
    "conference": {
      "title": "DemoConf",
      "days": [
        {
          "date": "2026-08-23",
          "rooms": [
            {
              "name": "Main Hall",
              "talks": [
                {
                  "date": "2026-08-23T09:00:00Z",
                  "duration": "00:30",
                  "title": "Opening",
                  "language": "en",
                  "persons": [{"public_name": "Ada Lovelace"}]
                }
              ]
            }
          ]
        }
      ]
    }
  }
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.json")
	if err := os.WriteFile(path, []byte(fixtureJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	root := NewApp(config.Default()).rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestShowList(t *testing.T) {
	out := runCmd(t, "show", writeFixture(t), "--format", "list", "--no-color")
	if !strings.Contains(out, "DemoConf") {
		t.Errorf("missing title header in %q", out)
	}
	if !strings.Contains(out, "* 09:00 Opening, Ada Lovelace (en); in Main Hall") {
		t.Errorf("missing list line in %q", out)
	}
}

func TestShowTable(t *testing.T) {
	out := runCmd(t, "show", writeFixture(t), "--no-color")
	for _, want := range []string{"| Main Hall", "09:00 --┌", "Opening", "09:30 --└"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in table output:\n%s", want, out)
		}
	}
}

func TestShowRejectsNarrowWidth(t *testing.T) {
	root := NewApp(config.Default()).rootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"show", writeFixture(t), "--width", "4", "--no-color"})
	if err := root.Execute(); err == nil {
		t.Error("want error for sub-minimum width")
	}
}

func TestInfo(t *testing.T) {
	out := runCmd(t, "info", writeFixture(t), "--no-color")
	for _, want := range []string{"DemoConf", "version 1.0", "1 days, 1 talks", "2026-08-23", "09:00..09:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in info output:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	if out := runCmd(t, "version"); !strings.Contains(out, "fahrplan") {
		t.Errorf("version output %q", out)
	}
}
