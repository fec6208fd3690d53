package registry

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Rejection records a manifest entry excluded at load time.
type Rejection struct {
	Index  int
	ID     string
	Reason string
}

// Registry holds the validated tab descriptors for the life of the
// process. Construct once with Load and pass by reference; it is
// read-only afterwards.
type Registry struct {
	all        []Descriptor
	byID       map[string]Descriptor
	rejections []Rejection
}

// Load validates entries and builds a Registry. A malformed entry is
// excluded with a diagnostic log line and recorded in the rejection
// list; loading always continues past it.
func Load(entries []Descriptor, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := &Registry{byID: make(map[string]Descriptor, len(entries))}
	for i, d := range entries {
		if reason := d.validate(); reason != "" {
			reg.rejections = append(reg.rejections, Rejection{Index: i, ID: d.ID, Reason: reason})
			logger.Warn("tab descriptor excluded",
				zap.Int("index", i),
				zap.String("id", d.ID),
				zap.String("reason", reason))
			continue
		}
		if _, dup := reg.byID[d.ID]; dup {
			reg.rejections = append(reg.rejections, Rejection{Index: i, ID: d.ID, Reason: "duplicate id"})
			logger.Warn("tab descriptor excluded",
				zap.Int("index", i),
				zap.String("id", d.ID),
				zap.String("reason", "duplicate id"))
			continue
		}
		reg.all = append(reg.all, d)
		reg.byID[d.ID] = d
	}
	// Stable: equal orders keep manifest declaration order.
	sort.SliceStable(reg.all, func(i, j int) bool {
		return reg.all[i].sortOrder() < reg.all[j].sortOrder()
	})
	logger.Info("tab registry loaded",
		zap.Int("tabs", len(reg.all)),
		zap.Int("rejected", len(reg.rejections)))
	return reg
}

// All returns every registered descriptor in sort order.
func (r *Registry) All() []Descriptor {
	return append([]Descriptor(nil), r.all...)
}

// ByID looks up a descriptor by tab id.
func (r *Registry) ByID(id string) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Rejections returns the entries excluded at load time.
func (r *Registry) Rejections() []Rejection {
	return append([]Rejection(nil), r.rejections...)
}

func (r *Registry) byKind(kind Kind) []Descriptor {
	out := make([]Descriptor, 0, len(r.all))
	for _, d := range r.all {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// WorkPackages returns the workpackage tabs in sort order.
func (r *Registry) WorkPackages() []Descriptor { return r.byKind(KindWorkPackage) }

// Categories returns the category tabs in sort order.
func (r *Registry) Categories() []Descriptor { return r.byKind(KindCategory) }

// Services returns the service tabs in sort order.
func (r *Registry) Services() []Descriptor { return r.byKind(KindService) }

// ServicesForWP returns the service tabs declaring the given WP code.
func (r *Registry) ServicesForWP(code string) []Descriptor {
	out := make([]Descriptor, 0, len(r.all))
	for _, d := range r.byKind(KindService) {
		for _, wp := range d.WorkPackages {
			if wp == code {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// ServicesForCategory returns the service tabs declaring the given
// category label.
func (r *Registry) ServicesForCategory(label string) []Descriptor {
	out := make([]Descriptor, 0, len(r.all))
	for _, d := range r.byKind(KindService) {
		for _, c := range d.Categories {
			if c == label {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// DefaultWorkPackageID returns the first workpackage tab id, or "" when
// none are registered.
func (r *Registry) DefaultWorkPackageID() string {
	wps := r.WorkPackages()
	if len(wps) == 0 {
		return ""
	}
	return wps[0].ID
}

// DefaultCategoryID returns the first category tab id, or "".
func (r *Registry) DefaultCategoryID() string {
	cats := r.Categories()
	if len(cats) == 0 {
		return ""
	}
	return cats[0].ID
}

// DefaultServiceForWP returns the first service tab visible under the
// given workpackage tab, or "" when the scope is empty.
func (r *Registry) DefaultServiceForWP(wpTabID string) string {
	services := r.ServicesForWP(r.WPCode(wpTabID))
	if len(services) == 0 {
		return ""
	}
	return services[0].ID
}

// DefaultServiceForCategory returns the first service tab visible under
// the given category tab, or "".
func (r *Registry) DefaultServiceForCategory(catTabID string) string {
	services := r.ServicesForCategory(r.CategoryLabel(catTabID))
	if len(services) == 0 {
		return ""
	}
	return services[0].ID
}

// WPCode resolves the work-package code for a workpackage tab id. The
// declared code wins; otherwise the code is derived from the id by
// stripping a case-insensitive "wp" prefix and upper-casing ("wp4" ->
// "WP4"). Ids without the prefix come back unchanged. Total: never
// fails, even for ids the registry has never seen.
func (r *Registry) WPCode(wpTabID string) string {
	if d, ok := r.byID[wpTabID]; ok && d.Kind == KindWorkPackage && d.WPCode != "" {
		return d.WPCode
	}
	return deriveWPCode(wpTabID)
}

func deriveWPCode(id string) string {
	lower := strings.ToLower(id)
	if !strings.HasPrefix(lower, "wp") {
		return id
	}
	return "WP" + strings.ToUpper(lower[2:])
}

// CategoryLabel resolves the grouping label for a category tab id, or
// "" when the id is not a registered category tab.
func (r *Registry) CategoryLabel(catTabID string) string {
	if d, ok := r.byID[catTabID]; ok && d.Kind == KindCategory {
		return d.CategoryLabel()
	}
	return ""
}
