package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clcc/cablegnosis/internal/nav"
	"github.com/clcc/cablegnosis/internal/registry"
	"github.com/clcc/cablegnosis/internal/search"
)

func testModel(t *testing.T) Model {
	t.Helper()
	reg := registry.Load(registry.Manifest(), nil)
	index := search.NewIndex(reg)
	keys := NewKeyRegistry(DefaultKeyBindings())
	return NewModel(reg, nav.NewState(reg), index, nil, keys, search.DefaultLimit)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestPrimaryCyclingWraps(t *testing.T) {
	m := testModel(t)
	start := m.State().SelectedWP

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.State().SelectedWP == start {
		t.Fatal("right arrow did not advance the work package")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.State().SelectedWP != start {
		t.Errorf("left arrow did not return to %q", start)
	}
}

func TestToolCyclingStaysInScope(t *testing.T) {
	m := testModel(t)
	visible := nav.VisibleTools(m.reg, m.State())
	if len(visible) < 2 {
		t.Skip("fixture scope too small to cycle")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	found := false
	for _, d := range visible {
		if d.ID == m.State().SelectedTool {
			found = true
		}
	}
	if !found {
		t.Errorf("tool cycling left scope: %q", m.State().SelectedTool)
	}
}

func TestOpenOrchestratorShieldsAppKeys(t *testing.T) {
	m := testModel(t)
	m = update(t, m, keyMsg('o'))
	if m.modal == nil {
		t.Fatal("o did not open the orchestrator panel")
	}
	if m.ActiveScope() != "screen:orchestrator" {
		t.Errorf("scope = %q, want screen:orchestrator", m.ActiveScope())
	}
	// q now types into the search box instead of quitting.
	m = update(t, m, keyMsg('q'))
	if m.quitting {
		t.Error("q quit the app while the panel was open")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.modal != nil {
		t.Error("esc did not close the panel")
	}
}

func TestExportWithoutMonitorReportsError(t *testing.T) {
	m := testModel(t) // no monitoring store wired
	next, cmd := m.Update(keyMsg('e'))
	if cmd == nil {
		t.Fatal("export without a store must report an error")
	}
	status, ok := cmd().(StatusMsg)
	if !ok || !status.IsErr {
		t.Errorf("export emitted %#v, want error status", status)
	}
	if next.(Model).quitting {
		t.Error("export must not quit")
	}
}

func TestUptimeLoadedMsgUpdatesModel(t *testing.T) {
	m := testModel(t)
	m = update(t, m, UptimeLoadedMsg{Value: 98.2, OK: true})
	if !m.uptimeOK || m.uptime != 98.2 {
		t.Errorf("uptime state = (%v, %v), want (98.2, true)", m.uptime, m.uptimeOK)
	}
}

func TestModeSelectedMsgReduces(t *testing.T) {
	m := testModel(t)
	m = update(t, m, ModeSelectedMsg{Mode: nav.ModePerCategory})
	if m.State().Mode != nav.ModePerCategory {
		t.Errorf("mode = %q, want per_category", m.State().Mode)
	}
	m = update(t, m, ModeSelectedMsg{Mode: nav.ModeFavorites})
	if m.State().Mode != nav.ModePerCategory {
		t.Error("disabled mode selection changed state")
	}
}

func TestNavigateMsgFollowsLink(t *testing.T) {
	m := testModel(t)
	m = update(t, m, NavigateMsg{Ref: "Diagnostics Console"})
	if m.State().SelectedTool != "svc-diagnostics" {
		t.Errorf("tool = %q, want svc-diagnostics", m.State().SelectedTool)
	}
	before := m.State()
	m = update(t, m, NavigateMsg{Ref: "no-such-tool"})
	if m.State() != before {
		t.Error("stale link changed navigation state")
	}
}
