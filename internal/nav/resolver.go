package nav

import "github.com/clcc/cablegnosis/internal/registry"

// ActiveWPTab returns the effective work-package tab id: the selection,
// or the registry default when nothing is selected.
func ActiveWPTab(reg *registry.Registry, s State) string {
	if s.SelectedWP != "" {
		return s.SelectedWP
	}
	return reg.DefaultWorkPackageID()
}

// ActiveCategoryTab returns the effective category tab id.
func ActiveCategoryTab(reg *registry.Registry, s State) string {
	if s.SelectedCategory != "" {
		return s.SelectedCategory
	}
	return reg.DefaultCategoryID()
}

// VisibleTools computes the service tabs in scope for the current mode
// and axis selection, in registry order. Pure; identical inputs yield
// identical order. Disabled modes have no scope.
func VisibleTools(reg *registry.Registry, s State) []registry.Descriptor {
	switch s.Mode {
	case ModePerWP:
		return reg.ServicesForWP(reg.WPCode(ActiveWPTab(reg, s)))
	case ModePerCategory:
		return reg.ServicesForCategory(reg.CategoryLabel(ActiveCategoryTab(reg, s)))
	}
	return nil
}

// ActiveTool resolves the tool whose content should be visible: the
// selected tool when it is in scope, otherwise the first tool of the
// scope, otherwise "" — the explicit empty-state signal. A selection
// left over from another scope is never reported as active.
func ActiveTool(reg *registry.Registry, s State) string {
	visible := VisibleTools(reg, s)
	for _, d := range visible {
		if d.ID == s.SelectedTool {
			return s.SelectedTool
		}
	}
	if len(visible) > 0 {
		return visible[0].ID
	}
	return ""
}
