package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Action names something the dashboard can do, independent of which
// keys trigger it.
type Action string

const (
	ActionQuit             Action = "quit"
	ActionOpenOrchestrator Action = "open-orchestrator"
	ActionPrimaryPrev      Action = "primary-prev"
	ActionPrimaryNext      Action = "primary-next"
	ActionToolPrev         Action = "tool-prev"
	ActionToolNext         Action = "tool-next"
	ActionExportCSV        Action = "export-csv"
	ActionRefresh          Action = "refresh"
	ActionClose            Action = "close"
	ActionSelect           Action = "select"
)

type KeyBinding struct {
	Keys        []string
	Action      Action
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action Action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

// DefaultKeyBindings is the stock binding set for the dashboard scope
// and the orchestrator panel scope.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: ActionQuit, Description: "quit", Scopes: []string{"app"}},
		{Keys: []string{"o"}, Action: ActionOpenOrchestrator, Description: "orchestrator", Scopes: []string{"app"}},
		{Keys: []string{"left", "h"}, Action: ActionPrimaryPrev, Description: "prev group", Scopes: []string{"app"}},
		{Keys: []string{"right", "l"}, Action: ActionPrimaryNext, Description: "next group", Scopes: []string{"app"}},
		{Keys: []string{"shift+tab"}, Action: ActionToolPrev, Description: "prev tool", Scopes: []string{"app"}},
		{Keys: []string{"tab"}, Action: ActionToolNext, Description: "next tool", Scopes: []string{"app"}},
		{Keys: []string{"e"}, Action: ActionExportCSV, Description: "export csv", Scopes: []string{"app"}},
		{Keys: []string{"r"}, Action: ActionRefresh, Description: "refresh", Scopes: []string{"app"}},
		{Keys: []string{"esc"}, Action: ActionClose, Description: "close", Scopes: []string{"screen:orchestrator"}},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "select", Scopes: []string{"screen:orchestrator"}},
	}
}
