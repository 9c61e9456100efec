package main

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"signupform/internal/config"
	"signupform/internal/form"
	"signupform/internal/submit"
	"signupform/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.UI.DebugLog != "" {
		f, err := tea.LogToFile(cfg.UI.DebugLog, "signupform")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
	}

	keysDir := ""
	if dir, err := os.UserConfigDir(); err == nil {
		keysDir = filepath.Join(dir, "signupform")
	}
	keys, err := tui.LoadKeybindings(keysDir)
	if err != nil {
		log.Fatalf("keybindings: %v", err)
	}

	store := form.NewStore()
	nav := form.NewController(store)
	sim := submit.NewSimulator(cfg.Submit.Delay(), submit.RandomOutcome(cfg.Submit.Seed))

	m := tui.New(cfg, keys, nav, sim)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
