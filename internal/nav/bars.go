package nav

import "github.com/clcc/cablegnosis/internal/registry"

// BarItem is one selectable entry on a navigation bar.
type BarItem struct {
	ID     string
	Label  string
	Active bool
}

// PrimaryBar derives the top bar: work-package tabs in per-WP mode,
// category tabs in per-category mode. Purely derived from state.
func PrimaryBar(reg *registry.Registry, s State) []BarItem {
	switch s.Mode {
	case ModePerWP:
		return barItems(reg.WorkPackages(), ActiveWPTab(reg, s))
	case ModePerCategory:
		return barItems(reg.Categories(), ActiveCategoryTab(reg, s))
	}
	return nil
}

// ToolsBar derives the second bar: the tools in scope with the active
// one flagged.
func ToolsBar(reg *registry.Registry, s State) []BarItem {
	return barItems(VisibleTools(reg, s), ActiveTool(reg, s))
}

func barItems(ds []registry.Descriptor, activeID string) []BarItem {
	items := make([]BarItem, 0, len(ds))
	for _, d := range ds {
		items = append(items, BarItem{ID: d.ID, Label: d.Label, Active: d.ID == activeID})
	}
	return items
}

// ContentVisibility derives one visibility flag per registered tab.
// Exactly one flag is true — the active tool's — or none when the scope
// is empty.
func ContentVisibility(reg *registry.Registry, s State) map[string]bool {
	active := ActiveTool(reg, s)
	vis := make(map[string]bool, len(reg.All()))
	for _, d := range reg.All() {
		vis[d.ID] = d.ID == active && active != ""
	}
	return vis
}
