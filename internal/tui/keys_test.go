package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestIsActionRespectsScope(t *testing.T) {
	keys := NewKeyRegistry(DefaultKeyBindings())

	if !keys.IsAction(keyMsg('q'), ActionQuit, "app") {
		t.Error("q should quit in app scope")
	}
	if keys.IsAction(keyMsg('q'), ActionQuit, "screen:orchestrator") {
		t.Error("q must not quit inside the orchestrator panel")
	}
	if !keys.IsAction(tea.KeyMsg{Type: tea.KeyEsc}, ActionClose, "screen:orchestrator") {
		t.Error("esc should close the orchestrator panel")
	}
}

func TestBindingsForScopeFiltersFooter(t *testing.T) {
	keys := NewKeyRegistry(DefaultKeyBindings())
	for _, b := range keys.BindingsForScope("app") {
		for _, s := range b.Scopes {
			if s == "screen:orchestrator" {
				t.Errorf("panel binding %q leaked into app footer", b.Action)
			}
		}
	}
}

func TestRegisterAddsBinding(t *testing.T) {
	keys := NewKeyRegistry(nil)
	custom := Action("custom")
	keys.Register(KeyBinding{Keys: []string{"x"}, Action: custom, Scopes: []string{"*"}})
	if !keys.IsAction(keyMsg('x'), custom, "anywhere") {
		t.Error("registered wildcard binding not matched")
	}
}
