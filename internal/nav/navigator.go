package nav

import (
	"strings"

	"github.com/clcc/cablegnosis/internal/registry"
)

// ResolveRef resolves a symbolic tool reference to a service tab id.
// Exact id match wins; otherwise the first case-insensitive label match
// over service tabs. A miss is reported, never an error.
func ResolveRef(reg *registry.Registry, ref string) (string, bool) {
	if d, ok := reg.ByID(ref); ok && d.Kind == registry.KindService {
		return d.ID, true
	}
	want := strings.ToLower(strings.TrimSpace(ref))
	if want == "" {
		return "", false
	}
	for _, d := range reg.Services() {
		if strings.ToLower(d.Label) == want {
			return d.ID, true
		}
	}
	return "", false
}

// Navigate follows a tool link. Precedence: unresolved ref or disabled
// mode is a no-op; a target already in scope changes only the tool
// ("stay in scope" beats every other rule); otherwise the active axis
// switches, best effort, to the tool's first declared work package or
// category that has a registered tab; with no registered match the axis
// stays put and only the tool changes. The returned state is always a
// complete, consistent triple.
func Navigate(reg *registry.Registry, s State, ref string) State {
	toolID, ok := ResolveRef(reg, ref)
	if !ok || !s.Mode.Enabled() {
		return s
	}

	for _, d := range VisibleTools(reg, s) {
		if d.ID == toolID {
			s.SelectedTool = toolID
			return s
		}
	}

	tool, _ := reg.ByID(toolID)
	switch s.Mode {
	case ModePerWP:
		for _, code := range tool.WorkPackages {
			if tabID := wpTabForCode(reg, code); tabID != "" {
				s.SelectedWP = tabID
				break
			}
		}
	case ModePerCategory:
		for _, label := range tool.Categories {
			if tabID := categoryTabForLabel(reg, label); tabID != "" {
				s.SelectedCategory = tabID
				break
			}
		}
	}
	s.SelectedTool = toolID
	return s
}

func wpTabForCode(reg *registry.Registry, code string) string {
	for _, d := range reg.WorkPackages() {
		if reg.WPCode(d.ID) == code {
			return d.ID
		}
	}
	return ""
}

func categoryTabForLabel(reg *registry.Registry, label string) string {
	for _, d := range reg.Categories() {
		if d.CategoryLabel() == label {
			return d.ID
		}
	}
	return ""
}
