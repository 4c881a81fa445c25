package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eep666/bunny-chapter-update-tool/internal/app"
	"github.com/eep666/bunny-chapter-update-tool/internal/config"
	"github.com/eep666/bunny-chapter-update-tool/internal/env"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	configFlag := flag.String("config", "", "Path to a config.yaml (default ~/.config/bunnychap/config.yaml)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("bunnychap %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if err := env.Load(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	var cfg config.Config
	if *configFlag != "" {
		cfg = config.LoadFrom(*configFlag)
	} else {
		cfg = config.Load()
	}

	p := tea.NewProgram(
		app.New(cfg),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
