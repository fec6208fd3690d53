package nav

import "github.com/clcc/cablegnosis/internal/registry"

// Mode is the top-level orchestrator grouping toggle.
type Mode string

const (
	ModePerWP       Mode = "per_wp"
	ModePerCategory Mode = "per_category"

	// Declared in the option list but permanently disabled; selection
	// attempts are no-ops.
	ModePerFunction Mode = "per_function"
	ModeFavorites   Mode = "favorites"
)

// Enabled reports whether the mode can actually be selected.
func (m Mode) Enabled() bool {
	return m == ModePerWP || m == ModePerCategory
}

// ModeOption is one row of the orchestrator mode list.
type ModeOption struct {
	Mode    Mode
	Label   string
	Enabled bool
}

// ModeOptions returns the full mode list in display order, disabled
// entries included.
func ModeOptions() []ModeOption {
	return []ModeOption{
		{Mode: ModePerWP, Label: "Per Work Package", Enabled: true},
		{Mode: ModePerCategory, Label: "Per Category", Enabled: true},
		{Mode: ModePerFunction, Label: "Per Function", Enabled: false},
		{Mode: ModeFavorites, Label: "Favorites", Enabled: false},
	}
}

// State is the single source of truth for navigation. Both axis
// selections are retained across mode switches; only the one matching
// the active mode is consulted for scope.
type State struct {
	Mode             Mode
	SelectedWP       string // workpackage tab id
	SelectedCategory string // category tab id
	SelectedTool     string // service tab id, "" when the scope is empty
}

// NewState builds the initial session state: per-WP mode with the first
// work-package, first category and that WP's first visible tool.
func NewState(reg *registry.Registry) State {
	s := State{
		Mode:             ModePerWP,
		SelectedWP:       reg.DefaultWorkPackageID(),
		SelectedCategory: reg.DefaultCategoryID(),
	}
	s.SelectedTool = reg.DefaultServiceForWP(s.SelectedWP)
	return s
}
