// Package uls models the FCC Universal Licensing System extracts for the
// amateur service: the per-kind record layouts, the positional records
// parsed from them, the typed projections the merge consumes, and the
// unified output record.
//
// Record layouts are data, not code. They are decoded once at package
// initialization from the embedded YAML catalogs, and typed field access
// resolves positions from the catalog by field name. A broken catalog is
// a build defect and panics at startup.
package uls

// Kind identifies one ULS record layout.
type Kind string

// The eight source layouts plus the unified output layout.
const (
	AM  Kind = "AM"  // amateur operator attributes
	CO  Kind = "CO"  // licensee comments
	EN  Kind = "EN"  // licensee entity
	HD  Kind = "HD"  // application and license header
	HS  Kind = "HS"  // application history
	LA  Kind = "LA"  // license attachment
	SC  Kind = "SC"  // special condition
	SF  Kind = "SF"  // free-form special condition
	FCC Kind = "FCC" // unified output
)

// Kinds lists every known layout in canonical order: merge inputs first,
// the remaining source layouts next, the output layout last.
var Kinds = []Kind{AM, CO, EN, HD, HS, LA, SC, SF, FCC}

// Keyed is implemented by every typed record that carries the join
// identifier shared across the extracts.
type Keyed interface {
	Key() string
}
