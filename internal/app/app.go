package app

import (
	"errors"
	"time"

	"github.com/tasksgodzilla/godzilla-tui/internal/api"
	"github.com/tasksgodzilla/godzilla-tui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Version is the release the binary reports on the welcome and version
// screens.
const Version = "0.3.0"

// Config describes user-provided application options.
type Config struct {
	BaseURL         string
	APIToken        string
	ProjectToken    string
	AutoLogin       bool
	RefreshInterval time.Duration
	RequestTimeout  time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	client := api.NewClient(cfg.BaseURL, cfg.APIToken, cfg.ProjectToken, cfg.RequestTimeout)
	model := ui.NewModel(client, ui.Options{
		AutoLogin:       cfg.AutoLogin,
		RefreshInterval: cfg.RefreshInterval,
		RequestTimeout:  cfg.RequestTimeout,
		Version:         Version,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
