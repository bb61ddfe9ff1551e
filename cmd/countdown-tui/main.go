package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/countdown/internal/config"
	"github.com/rgehrsitz/countdown/internal/storage"
	"github.com/rgehrsitz/countdown/internal/tui"
)

func main() {
	// Config file path is optional; the defaults store under the user config dir
	configPath := ""
	if len(os.Args) > 2 {
		fmt.Println("Usage: countdown-tui [config-file]")
		os.Exit(1)
	}
	if len(os.Args) == 2 {
		configPath = os.Args[1]
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			fmt.Printf("Error: Config file not found: %s\n", configPath)
			os.Exit(1)
		}
	}

	cfg, err := config.NewInputParser().LoadOrDefault(configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		fmt.Printf("Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Create the application model; no sensors are wired on a terminal
	model := tui.NewModel(tui.Options{
		Config:     cfg,
		Repository: storage.NewRepositoryFromConfig(store, cfg),
	})
	defer model.Stop()

	// Create the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
