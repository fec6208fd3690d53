package nav

import "github.com/clcc/cablegnosis/internal/registry"

// Action is a navigation event fed to Reduce. The presentation layer
// emits actions; it never mutates State directly.
type Action interface{ isAction() }

// SelectMode switches the orchestrator grouping mode.
type SelectMode struct{ Mode Mode }

// SelectWorkPackage activates a work-package tab on the primary bar.
type SelectWorkPackage struct{ TabID string }

// SelectCategory activates a category tab on the primary bar.
type SelectCategory struct{ TabID string }

// SelectTool activates a tool on the tools bar.
type SelectTool struct{ TabID string }

// FollowLink navigates via a symbolic tool reference (id or label).
type FollowLink struct{ Ref string }

func (SelectMode) isAction()        {}
func (SelectWorkPackage) isAction() {}
func (SelectCategory) isAction()    {}
func (SelectTool) isAction()        {}
func (FollowLink) isAction()        {}

// Reduce applies one action to the navigation state. Total: every
// invalid input (disabled mode, unknown tab, out-of-scope tool, stale
// link) reduces to the unchanged state.
func Reduce(reg *registry.Registry, s State, a Action) State {
	switch a := a.(type) {
	case SelectMode:
		if !a.Mode.Enabled() || a.Mode == s.Mode {
			return s
		}
		s.Mode = a.Mode
		s.SelectedTool = ActiveTool(reg, s)
		return s

	case SelectWorkPackage:
		d, ok := reg.ByID(a.TabID)
		if !ok || d.Kind != registry.KindWorkPackage || s.Mode != ModePerWP || a.TabID == s.SelectedWP {
			return s
		}
		s.SelectedWP = a.TabID
		s.SelectedTool = reg.DefaultServiceForWP(a.TabID)
		return s

	case SelectCategory:
		d, ok := reg.ByID(a.TabID)
		if !ok || d.Kind != registry.KindCategory || s.Mode != ModePerCategory || a.TabID == s.SelectedCategory {
			return s
		}
		s.SelectedCategory = a.TabID
		s.SelectedTool = reg.DefaultServiceForCategory(a.TabID)
		return s

	case SelectTool:
		for _, d := range VisibleTools(reg, s) {
			if d.ID == a.TabID {
				s.SelectedTool = a.TabID
				return s
			}
		}
		return s

	case FollowLink:
		return Navigate(reg, s, a.Ref)
	}
	return s
}
