package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/clcc/cablegnosis/internal/database/repository"
	"github.com/clcc/cablegnosis/internal/nav"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

// ModeSelectedMsg is emitted by the orchestrator panel.
type ModeSelectedMsg struct {
	Mode nav.Mode
}

// NavigateMsg routes a tool reference through the navigator.
type NavigateMsg struct {
	Ref string
}

// WindowLoadedMsg carries a freshly loaded metric window.
type WindowLoadedMsg struct {
	Metric   string
	Readings []repository.Reading
	Err      error
}

// UptimeLoadedMsg carries the derived platform-uptime indicator.
type UptimeLoadedMsg struct {
	Value float64
	OK    bool
	Err   error
}

// ExportDoneMsg reports a CSV export result.
type ExportDoneMsg struct {
	Path string
	Err  error
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
