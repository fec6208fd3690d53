package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clcc/cablegnosis/internal/monitor"
	"github.com/clcc/cablegnosis/internal/nav"
)

var errMonitorUnavailable = errors.New("monitoring store not configured")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil

	case WindowLoadedMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
			return m, nil
		}
		m.windows[msg.Metric] = msg.Readings
		return m, nil

	case UptimeLoadedMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
			return m, nil
		}
		m.uptime, m.uptimeOK = msg.Value, msg.OK
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
			return m, nil
		}
		m.SetStatus("Exported " + msg.Path)
		return m, nil

	case ModeSelectedMsg:
		before := m.state
		m.state = nav.Reduce(m.reg, m.state, nav.SelectMode{Mode: msg.Mode})
		if m.state == before {
			m.SetStatus("Mode unchanged")
		} else {
			m.SetStatus("Orchestrator mode: " + string(m.state.Mode))
		}
		return m, nil

	case NavigateMsg:
		before := m.state
		m.state = nav.Reduce(m.reg, m.state, nav.FollowLink{Ref: msg.Ref})
		if m.state == before {
			m.SetStatus(fmt.Sprintf("No tool for %q", msg.Ref))
		} else {
			m.SetStatus("Opened " + m.state.SelectedTool)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if m.modal != nil {
			next, cmd, pop := m.modal.Update(msg)
			if pop {
				m.modal = nil
				return m, cmd
			}
			m.modal = next
			return m, cmd
		}

		scope := m.ActiveScope()
		switch {
		case m.keys.IsAction(msg, ActionQuit, scope):
			m.quitting = true
			return m, tea.Quit
		case m.keys.IsAction(msg, ActionOpenOrchestrator, scope):
			m.modal = newOrchestratorScreen(m.index, m.searchLimit)
			return m, nil
		case m.keys.IsAction(msg, ActionPrimaryPrev, scope):
			m.stepPrimary(-1)
			return m, nil
		case m.keys.IsAction(msg, ActionPrimaryNext, scope):
			m.stepPrimary(1)
			return m, nil
		case m.keys.IsAction(msg, ActionToolPrev, scope):
			m.stepTool(-1)
			return m, nil
		case m.keys.IsAction(msg, ActionToolNext, scope):
			m.stepTool(1)
			return m, nil
		case m.keys.IsAction(msg, ActionExportCSV, scope):
			if m.monitor == nil {
				return m, ErrorCmd(errMonitorUnavailable)
			}
			cmds := make([]tea.Cmd, 0, len(monitor.Metrics()))
			for _, metric := range monitor.Metrics() {
				cmds = append(cmds, m.exportCmd(metric))
			}
			return m, tea.Batch(cmds...)
		case m.keys.IsAction(msg, ActionRefresh, scope):
			return m, m.Init()
		}
		return m, nil
	}

	if m.modal != nil {
		next, cmd, pop := m.modal.Update(msg)
		if pop {
			m.modal = nil
			return m, cmd
		}
		m.modal = next
		return m, cmd
	}
	return m, nil
}

// stepPrimary cycles the active axis of the primary bar.
func (m *Model) stepPrimary(delta int) {
	items := nav.PrimaryBar(m.reg, m.state)
	next := cycleActive(items, delta)
	if next == "" {
		return
	}
	switch m.state.Mode {
	case nav.ModePerWP:
		m.state = nav.Reduce(m.reg, m.state, nav.SelectWorkPackage{TabID: next})
	case nav.ModePerCategory:
		m.state = nav.Reduce(m.reg, m.state, nav.SelectCategory{TabID: next})
	}
}

// stepTool cycles the tools bar.
func (m *Model) stepTool(delta int) {
	items := nav.ToolsBar(m.reg, m.state)
	next := cycleActive(items, delta)
	if next == "" {
		return
	}
	m.state = nav.Reduce(m.reg, m.state, nav.SelectTool{TabID: next})
}

func cycleActive(items []nav.BarItem, delta int) string {
	if len(items) == 0 {
		return ""
	}
	active := 0
	for i, it := range items {
		if it.Active {
			active = i
			break
		}
	}
	next := (active + delta + len(items)) % len(items)
	return items[next].ID
}
