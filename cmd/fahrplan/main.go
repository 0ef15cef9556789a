package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/fahrplan/internal/config"
	"github.com/javiermolinar/fahrplan/internal/ui"
)

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := ui.NewApp(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
