package nav

import (
	"reflect"
	"testing"

	"github.com/clcc/cablegnosis/internal/registry"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	return registry.Load([]registry.Descriptor{
		{ID: "wp4", Label: "WP4 – Innovative cable systems", Kind: registry.KindWorkPackage, Order: 1},
		{ID: "wp5", Label: "WP5 – Lifecycle assessment", Kind: registry.KindWorkPackage, Order: 2},
		{ID: "wp9", Label: "WP9 – Empty", Kind: registry.KindWorkPackage, Order: 3},
		{ID: "cat-mon", Label: "Monitoring & Analytics", Kind: registry.KindCategory, Order: 10},
		{ID: "cat-perf", Label: "Cable Performance", Kind: registry.KindCategory, Order: 11},
		{ID: "svc-x", Label: "Service X", Kind: registry.KindService, Order: 20,
			WorkPackages: []string{"WP4", "WP5"}, Categories: []string{"Monitoring & Analytics"}},
		{ID: "svc-wp4-only", Label: "WP4 Only Tool", Kind: registry.KindService, Order: 21,
			WorkPackages: []string{"WP4"}, Categories: []string{"Cable Performance"}},
		{ID: "svc-orphan", Label: "Orphan Tool", Kind: registry.KindService, Order: 22,
			WorkPackages: []string{"WP7"}, Categories: []string{"Nonexistent"}},
	}, nil)
}

func TestNewStateDefaults(t *testing.T) {
	reg := testRegistry(t)
	s := NewState(reg)
	if s.Mode != ModePerWP {
		t.Errorf("initial mode = %q, want per_wp", s.Mode)
	}
	if s.SelectedWP != "wp4" || s.SelectedCategory != "cat-mon" {
		t.Errorf("initial axes = (%q, %q), want (wp4, cat-mon)", s.SelectedWP, s.SelectedCategory)
	}
	if s.SelectedTool != "svc-x" {
		t.Errorf("initial tool = %q, want svc-x", s.SelectedTool)
	}
}

func TestModeReselectionIsIdempotent(t *testing.T) {
	reg := testRegistry(t)
	s := NewState(reg)
	once := Reduce(reg, s, SelectMode{Mode: ModePerCategory})
	twice := Reduce(reg, once, SelectMode{Mode: ModePerCategory})
	if once != twice {
		t.Errorf("re-selecting active mode changed state: %+v vs %+v", once, twice)
	}
}

func TestDisabledAndUnknownModesAreNoOps(t *testing.T) {
	reg := testRegistry(t)
	s := NewState(reg)
	for _, m := range []Mode{ModePerFunction, ModeFavorites, Mode("grid")} {
		if got := Reduce(reg, s, SelectMode{Mode: m}); got != s {
			t.Errorf("SelectMode(%q) changed state to %+v", m, got)
		}
	}
}

func TestModeSwitchRetainsAxes(t *testing.T) {
	reg := testRegistry(t)
	s := NewState(reg)
	s = Reduce(reg, s, SelectWorkPackage{TabID: "wp5"})
	s = Reduce(reg, s, SelectMode{Mode: ModePerCategory})
	if s.SelectedWP != "wp5" {
		t.Errorf("WP selection lost on mode switch: %q", s.SelectedWP)
	}
	s = Reduce(reg, s, SelectMode{Mode: ModePerWP})
	if s.SelectedWP != "wp5" {
		t.Errorf("WP selection lost on mode round trip: %q", s.SelectedWP)
	}
}

func TestVisibleToolsDeterministicOrder(t *testing.T) {
	reg := testRegistry(t)
	s := NewState(reg)
	a := VisibleTools(reg, s)
	b := VisibleTools(reg, s)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("VisibleTools order not deterministic")
	}
	if len(a) != 2 || a[0].ID != "svc-x" || a[1].ID != "svc-wp4-only" {
		t.Errorf("WP4 scope = %v, want [svc-x svc-wp4-only]", a)
	}
}

func TestEmptyScopeForcesNoActiveTool(t *testing.T) {
	reg := testRegistry(t)
	s := NewState(reg)
	s = Reduce(reg, s, SelectWorkPackage{TabID: "wp9"})
	if got := VisibleTools(reg, s); len(got) != 0 {
		t.Fatalf("WP9 scope = %v, want empty", got)
	}
	if s.SelectedTool != "" {
		t.Errorf("tool after empty-scope selection = %q, want empty", s.SelectedTool)
	}
	if got := ActiveTool(reg, s); got != "" {
		t.Errorf("ActiveTool in empty scope = %q, want empty", got)
	}
	vis := ContentVisibility(reg, s)
	for id, on := range vis {
		if on {
			t.Errorf("ContentVisibility shows %q in empty scope", id)
		}
	}
}

func TestStaleSelectionNeverReportedActive(t *testing.T) {
	reg := testRegistry(t)
	s := State{Mode: ModePerWP, SelectedWP: "wp5", SelectedTool: "svc-wp4-only"}
	if got := ActiveTool(reg, s); got != "svc-x" {
		t.Errorf("ActiveTool = %q, want first in-scope tool svc-x", got)
	}
}

func TestNavigateStaysInScope(t *testing.T) {
	reg := testRegistry(t)
	// svc-x declares WP4 first, but it is already visible under WP5:
	// the WP axis must not be yanked back to wp4.
	s := State{Mode: ModePerWP, SelectedWP: "wp5", SelectedCategory: "cat-mon"}
	got := Navigate(reg, s, "svc-x")
	want := State{Mode: ModePerWP, SelectedWP: "wp5", SelectedCategory: "cat-mon", SelectedTool: "svc-x"}
	if got != want {
		t.Errorf("Navigate = %+v, want %+v", got, want)
	}
}

func TestNavigateSwitchesWPWhenOutOfScope(t *testing.T) {
	reg := testRegistry(t)
	s := State{Mode: ModePerWP, SelectedWP: "wp5", SelectedCategory: "cat-mon"}
	got := Navigate(reg, s, "svc-wp4-only")
	if got.SelectedWP != "wp4" || got.SelectedTool != "svc-wp4-only" {
		t.Errorf("Navigate = %+v, want switch to wp4 with svc-wp4-only", got)
	}
	if got.SelectedCategory != "cat-mon" {
		t.Errorf("orthogonal category axis changed: %q", got.SelectedCategory)
	}
}

func TestNavigateSwitchesCategoryWhenOutOfScope(t *testing.T) {
	reg := testRegistry(t)
	s := State{Mode: ModePerCategory, SelectedWP: "wp5", SelectedCategory: "cat-mon"}
	got := Navigate(reg, s, "svc-wp4-only")
	if got.SelectedCategory != "cat-perf" || got.SelectedTool != "svc-wp4-only" {
		t.Errorf("Navigate = %+v, want switch to cat-perf with svc-wp4-only", got)
	}
	if got.SelectedWP != "wp5" {
		t.Errorf("orthogonal WP axis changed: %q", got.SelectedWP)
	}
}

func TestNavigateNoRegisteredAxisStillSetsTool(t *testing.T) {
	reg := testRegistry(t)
	// svc-orphan's WP7 / "Nonexistent" have no registered tabs: the
	// axis stays put but the tool is still set.
	s := State{Mode: ModePerWP, SelectedWP: "wp5", SelectedCategory: "cat-mon"}
	got := Navigate(reg, s, "svc-orphan")
	if got.SelectedWP != "wp5" || got.SelectedTool != "svc-orphan" {
		t.Errorf("Navigate = %+v, want wp5 kept with svc-orphan set", got)
	}

	s.Mode = ModePerCategory
	got = Navigate(reg, s, "svc-orphan")
	if got.SelectedCategory != "cat-mon" || got.SelectedTool != "svc-orphan" {
		t.Errorf("Navigate = %+v, want cat-mon kept with svc-orphan set", got)
	}
}

func TestNavigateUnresolvedRefIsNoOp(t *testing.T) {
	reg := testRegistry(t)
	s := NewState(reg)
	for _, ref := range []string{"no-such-tool", "", "   ", "wp4"} {
		if got := Navigate(reg, s, ref); got != s {
			t.Errorf("Navigate(%q) changed state: %+v", ref, got)
		}
	}
}

func TestNavigateDisabledModeIsNoOp(t *testing.T) {
	reg := testRegistry(t)
	s := State{Mode: ModePerFunction, SelectedWP: "wp4"}
	if got := Navigate(reg, s, "svc-x"); got != s {
		t.Errorf("Navigate in disabled mode changed state: %+v", got)
	}
}

func TestResolveRefByLabelCaseInsensitive(t *testing.T) {
	reg := testRegistry(t)
	id, ok := ResolveRef(reg, "service x")
	if !ok || id != "svc-x" {
		t.Errorf("ResolveRef(service x) = (%q, %v), want (svc-x, true)", id, ok)
	}
	// Non-service ids never resolve, even on exact match.
	if _, ok := ResolveRef(reg, "cat-mon"); ok {
		t.Error("ResolveRef resolved a category tab id")
	}
}

func TestSelectToolRejectsOutOfScope(t *testing.T) {
	reg := testRegistry(t)
	s := Reduce(reg, NewState(reg), SelectWorkPackage{TabID: "wp5"})
	if got := Reduce(reg, s, SelectTool{TabID: "svc-wp4-only"}); got != s {
		t.Errorf("SelectTool out of scope changed state: %+v", got)
	}
	got := Reduce(reg, s, SelectTool{TabID: "svc-x"})
	if got.SelectedTool != "svc-x" {
		t.Errorf("SelectTool in scope = %+v, want svc-x selected", got)
	}
}

func TestBarsDeriveFromState(t *testing.T) {
	reg := testRegistry(t)
	s := NewState(reg)

	primary := PrimaryBar(reg, s)
	if len(primary) != 3 || !primary[0].Active || primary[1].Active {
		t.Errorf("primary bar = %+v, want wp4 active among 3", primary)
	}

	tools := ToolsBar(reg, s)
	if len(tools) != 2 || !tools[0].Active {
		t.Errorf("tools bar = %+v, want svc-x active among 2", tools)
	}

	s = Reduce(reg, s, SelectMode{Mode: ModePerCategory})
	primary = PrimaryBar(reg, s)
	if len(primary) != 2 || primary[0].ID != "cat-mon" || !primary[0].Active {
		t.Errorf("category bar = %+v, want cat-mon active among 2", primary)
	}

	vis := ContentVisibility(reg, s)
	active := 0
	for _, on := range vis {
		if on {
			active++
		}
	}
	if active != 1 || !vis[ActiveTool(reg, s)] {
		t.Errorf("visibility = %v, want exactly the active tool true", vis)
	}
}
