package registry

import "strings"

// Kind classifies a tab within the orchestrator.
type Kind string

const (
	KindWorkPackage Kind = "workpackage"
	KindCategory    Kind = "category"
	KindService     Kind = "service"
)

func (k Kind) Valid() bool {
	switch k {
	case KindWorkPackage, KindCategory, KindService:
		return true
	}
	return false
}

// orderUnset is the sort rank for descriptors that declare no order.
const orderUnset = 999

// Descriptor is the registration record for one tab. Descriptors are
// immutable once loaded into a Registry.
type Descriptor struct {
	ID    string
	Label string
	Kind  Kind

	// Order defines sort precedence within the descriptor's kind.
	// Zero means "not declared" and ranks last.
	Order int

	// WPCode is the explicit work-package code (e.g. "WP4") on
	// workpackage tabs. Optional; derived from the id when absent.
	WPCode string

	// Category is the grouping label a category tab represents. Falls
	// back to Label when empty.
	Category string

	// WorkPackages lists the WP codes a service tab belongs to, in
	// declaration order. Empty for non-service kinds.
	WorkPackages []string

	// Categories lists the category labels a service tab belongs to.
	Categories []string

	Tags    []string
	Version string
	Status  string
}

func (d Descriptor) sortOrder() int {
	if d.Order <= 0 {
		return orderUnset
	}
	return d.Order
}

// CategoryLabel returns the grouping label a category tab contributes to
// service scoping.
func (d Descriptor) CategoryLabel() string {
	if d.Category != "" {
		return d.Category
	}
	return d.Label
}

func (d Descriptor) validate() string {
	if strings.TrimSpace(d.ID) == "" {
		return "missing id"
	}
	if strings.TrimSpace(d.Label) == "" {
		return "missing label"
	}
	if !d.Kind.Valid() {
		return "unknown kind " + kindString(d.Kind)
	}
	return ""
}

func kindString(k Kind) string {
	if k == "" {
		return "(empty)"
	}
	return string(k)
}
