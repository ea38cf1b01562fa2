package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yislamovic/scheduler-v2/internal/client"
	"github.com/yislamovic/scheduler-v2/internal/tui"
)

const defaultServerURL = "http://localhost:8001"

func main() {
	serverURL := os.Getenv("SCHEDULER_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}

	api := client.New(serverURL)
	p := tea.NewProgram(
		tui.NewModel(api),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
