// Package filter drops licenses that are no longer current before the
// merge sees them. Exclusion is decided once, from the license headers,
// then applied uniformly to every input stream so that no stream can
// resurrect a lapsed license.
package filter

import (
	"fmt"

	"github.com/N7DR/fcc-db/pkg/dates"
	"github.com/N7DR/fcc-db/pkg/uls"
)

// Exclusions is the set of identifiers whose licenses expired or were
// cancelled before a reference date.
type Exclusions struct {
	expired   map[string]struct{}
	cancelled map[string]struct{}
}

// NewExclusions scans the license headers and collects every identifier
// whose expired or cancellation date falls strictly before today, an ISO
// date. Dates equal to today keep the license. Empty date fields mean the
// license has not lapsed; any non-empty date that fails to convert fails
// the scan.
func NewExclusions(headers []uls.LicenseHeader, today string) (*Exclusions, error) {
	ex := &Exclusions{
		expired:   make(map[string]struct{}),
		cancelled: make(map[string]struct{}),
	}

	for _, h := range headers {
		if h.ExpiredDate != "" {
			iso, err := dates.Transform(h.ExpiredDate)
			if err != nil {
				return nil, fmt.Errorf("header %s expired date: %w", h.ID, err)
			}
			if iso < today {
				ex.expired[h.ID] = struct{}{}
			}
		}

		if h.CancellationDate != "" {
			iso, err := dates.Transform(h.CancellationDate)
			if err != nil {
				return nil, fmt.Errorf("header %s cancellation date: %w", h.ID, err)
			}
			if iso < today {
				ex.cancelled[h.ID] = struct{}{}
			}
		}
	}

	return ex, nil
}

// Excluded reports whether id belongs to a lapsed license.
func (e *Exclusions) Excluded(id string) bool {
	if _, ok := e.expired[id]; ok {
		return true
	}
	_, ok := e.cancelled[id]
	return ok
}

// Expired returns the number of identifiers excluded for expiry.
func (e *Exclusions) Expired() int { return len(e.expired) }

// Cancelled returns the number of identifiers excluded for cancellation.
// An identifier can appear in both counts.
func (e *Exclusions) Cancelled() int { return len(e.cancelled) }

// Apply returns the records whose identifiers are not excluded, in input
// order.
func Apply[T uls.Keyed](e *Exclusions, records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !e.Excluded(r.Key()) {
			out = append(out, r)
		}
	}
	return out
}
