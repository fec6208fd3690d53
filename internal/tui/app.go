package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clcc/cablegnosis/internal/database/repository"
	"github.com/clcc/cablegnosis/internal/monitor"
	"github.com/clcc/cablegnosis/internal/nav"
	"github.com/clcc/cablegnosis/internal/registry"
	"github.com/clcc/cablegnosis/internal/search"
)

// Screen is a modal surface layered over the dashboard. Update returns
// the next screen, an optional command, and whether to close.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Model is the root Bubble Tea model. All navigation decisions go
// through the reducer; the model only holds presentation state.
type Model struct {
	width  int
	height int

	reg     *registry.Registry
	state   nav.State
	index   *search.Index
	monitor *monitor.Service

	keys        *KeyRegistry
	searchLimit int

	status    string
	statusErr bool
	quitting  bool

	modal    Screen
	windows  map[string][]repository.Reading
	uptime   float64
	uptimeOK bool
}

func NewModel(reg *registry.Registry, state nav.State, index *search.Index, mon *monitor.Service, keys *KeyRegistry, searchLimit int) Model {
	return Model{
		width:       100,
		height:      32,
		reg:         reg,
		state:       state,
		index:       index,
		monitor:     mon,
		keys:        keys,
		searchLimit: searchLimit,
		status:      "Ready",
		windows:     make(map[string][]repository.Reading),
	}
}

func (m Model) Init() tea.Cmd {
	if m.monitor == nil {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(monitor.Metrics())+1)
	for _, metric := range monitor.Metrics() {
		cmds = append(cmds, m.loadWindowCmd(metric))
	}
	cmds = append(cmds, m.loadUptimeCmd())
	return tea.Batch(cmds...)
}

func (m Model) loadUptimeCmd() tea.Cmd {
	svc := m.monitor
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		value, ok, err := svc.UptimeKPI(ctx)
		return UptimeLoadedMsg{Value: value, OK: ok, Err: err}
	}
}

func (m Model) loadWindowCmd(metric string) tea.Cmd {
	svc := m.monitor
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		readings, err := svc.Window(ctx, metric)
		return WindowLoadedMsg{Metric: metric, Readings: readings, Err: err}
	}
}

func (m Model) exportCmd(metric string) tea.Cmd {
	svc := m.monitor
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		path, err := svc.ExportCSV(ctx, metric)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// State exposes the navigation state for tests.
func (m Model) State() nav.State { return m.state }

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if m.modal != nil {
		return m.modal.Scope()
	}
	return "app"
}
