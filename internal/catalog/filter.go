package catalog

import "net/url"

// Sentinel values meaning "no constraint on this axis".
const (
	OrgUnitAll  = "all"
	CategoryAll = "all-types"
)

// Filter is the three-axis selection that fully determines which document
// set should be visible. Values are never validated against the
// enumerations client-side; the remote store rejects or ignores unknown
// identifiers. A Filter is passed by value so every fetch evaluates one
// consistent snapshot.
type Filter struct {
	Query    string
	OrgUnit  string
	Category string
}

// NewFilter returns the unconstrained filter.
func NewFilter() Filter {
	return Filter{OrgUnit: OrgUnitAll, Category: CategoryAll}
}

// Params serializes the filter into query parameters. Axes equal to their
// sentinel (or empty) are omitted entirely, never sent as empty strings.
func (f Filter) Params() url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set("search", f.Query)
	}
	if f.OrgUnit != "" && f.OrgUnit != OrgUnitAll {
		v.Set("orgUnit", f.OrgUnit)
	}
	if f.Category != "" && f.Category != CategoryAll {
		v.Set("category", f.Category)
	}
	return v
}

// IsUnconstrained reports whether every axis is at its sentinel.
func (f Filter) IsUnconstrained() bool {
	return f.Query == "" &&
		(f.OrgUnit == "" || f.OrgUnit == OrgUnitAll) &&
		(f.Category == "" || f.Category == CategoryAll)
}
