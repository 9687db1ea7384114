// Package merge folds the four extract streams into unified license
// records, one per unique system identifier. Amateur records create
// licenses; the other streams only annotate licenses that already exist,
// and each stream must agree with the stored callsign before it may
// touch a record.
package merge

import (
	"fmt"
	"sort"

	"github.com/N7DR/fcc-db/pkg/dates"
	"github.com/N7DR/fcc-db/pkg/errors"
	"github.com/N7DR/fcc-db/pkg/uls"
)

// Store accumulates licenses keyed by identifier.
type Store struct {
	licenses map[string]*uls.License

	skippedEntities int
	skippedHeaders  int
}

// New returns an empty store.
func New() *Store {
	return &Store{licenses: make(map[string]*uls.License)}
}

// MergeAmateur folds one AM record in, creating the license when the
// identifier is new. Every projected field overwrites the stored value.
func (s *Store) MergeAmateur(a uls.Amateur) {
	l, ok := s.licenses[a.ID]
	if !ok {
		l = &uls.License{ID: a.ID}
		s.licenses[a.ID] = l
	}

	l.Callsign = a.Callsign
	l.OperatorClass = a.OperatorClass
	l.GroupCode = a.GroupCode
	l.RegionCode = a.RegionCode
	l.TrusteeCallsign = a.TrusteeCallsign
	l.TrusteeIndicator = a.TrusteeIndicator
	l.SystematicCallsignChange = a.SystematicCallsignChange
	l.VanityCallsignChange = a.VanityCallsignChange
	l.VanityRelationship = a.VanityRelationship
	l.PreviousCallsign = a.PreviousCallsign
	l.PreviousOperatorClass = a.PreviousOperatorClass
	l.TrusteeName = a.TrusteeName
}

// MergeComment folds one CO record in. A comment that names an unknown
// identifier, or whose callsign disagrees with the stored license, means
// the extracts contradict each other and the merge cannot continue.
// Non-empty dates convert to ISO form; empty dates leave the stored
// value alone.
func (s *Store) MergeComment(c uls.Comment) error {
	l, ok := s.licenses[c.ID]
	if !ok {
		return &errors.JoinError{Kind: "CO", Key: c.ID}
	}
	if c.Callsign != l.Callsign {
		return &errors.CallsignError{Kind: "CO", Key: c.ID, Incoming: c.Callsign, Stored: l.Callsign}
	}

	if c.CommentDate != "" {
		iso, err := dates.Transform(c.CommentDate)
		if err != nil {
			return fmt.Errorf("comment %s comment date: %w", c.ID, err)
		}
		l.CommentDate = iso
	}

	l.Description = c.Description
	l.COStatusCode = c.StatusCode

	if c.StatusDate != "" {
		iso, err := dates.Transform(c.StatusDate)
		if err != nil {
			return fmt.Errorf("comment %s status date: %w", c.ID, err)
		}
		l.COStatusDate = iso
	}

	return nil
}

// MergeEntity folds one EN record in. The weekly extracts are not
// internally consistent: an entity whose identifier has no license is
// skipped and counted rather than half-merged, since the next extract
// usually resolves it. A callsign disagreement is still fatal.
func (s *Store) MergeEntity(e uls.Entity) error {
	l, ok := s.licenses[e.ID]
	if !ok {
		s.skippedEntities++
		return nil
	}
	if e.Callsign != l.Callsign {
		return &errors.CallsignError{Kind: "EN", Key: e.ID, Incoming: e.Callsign, Stored: l.Callsign}
	}

	l.EntityName = e.EntityName
	l.FirstName = e.FirstName
	l.MiddleInitial = e.MiddleInitial
	l.LastName = e.LastName
	l.Suffix = e.Suffix
	l.Phone = e.Phone
	l.Fax = e.Fax
	l.Email = e.Email
	l.StreetAddress = e.StreetAddress
	l.City = e.City
	l.State = e.State
	l.ZipCode = e.ZipCode
	l.POBox = e.POBox
	l.AttentionLine = e.AttentionLine
	l.FRN = e.FRN
	l.ApplicantTypeCode = e.ApplicantTypeCode
	l.ApplicantTypeCodeOther = e.ApplicantTypeCodeOther
	l.ENStatusCode = e.StatusCode

	if e.StatusDate != "" {
		iso, err := dates.Transform(e.StatusDate)
		if err != nil {
			return fmt.Errorf("entity %s status date: %w", e.ID, err)
		}
		l.ENStatusDate = iso
	}

	return nil
}

// MergeLicenseHeader folds one HD record in. Unknown identifiers skip
// and count, like entities. Non-empty dates convert to ISO form; empty
// dates leave the stored value alone.
func (s *Store) MergeLicenseHeader(h uls.LicenseHeader) error {
	l, ok := s.licenses[h.ID]
	if !ok {
		s.skippedHeaders++
		return nil
	}
	if h.Callsign != l.Callsign {
		return &errors.CallsignError{Kind: "HD", Key: h.ID, Incoming: h.Callsign, Stored: l.Callsign}
	}

	l.LicenseStatus = h.LicenseStatus
	l.RadioServiceCode = h.RadioServiceCode

	type datedField struct {
		name string
		src  string
		dst  *string
	}
	for _, f := range []datedField{
		{"grant date", h.GrantDate, &l.GrantDate},
		{"expired date", h.ExpiredDate, &l.ExpiredDate},
		{"cancellation date", h.CancellationDate, &l.CancellationDate},
		{"effective date", h.EffectiveDate, &l.EffectiveDate},
		{"last action date", h.LastActionDate, &l.LastActionDate},
	} {
		if f.src == "" {
			continue
		}
		iso, err := dates.Transform(f.src)
		if err != nil {
			return fmt.Errorf("header %s %s: %w", h.ID, f.name, err)
		}
		*f.dst = iso
	}

	l.EligibilityRuleNum = h.EligibilityRuleNum
	l.Revoked = h.Revoked
	l.Convicted = h.Convicted
	l.Adjudged = h.Adjudged
	l.LicenseeNameChange = h.LicenseeNameChange

	return nil
}

// Validate drops every license whose callsign is empty and returns how
// many were dropped. A license without a callsign cannot be exported:
// the output is keyed on callsigns.
func (s *Store) Validate() int {
	removed := 0
	for id, l := range s.licenses {
		if l.Callsign == "" {
			delete(s.licenses, id)
			removed++
		}
	}
	return removed
}

// Get returns the license stored for id.
func (s *Store) Get(id string) (*uls.License, bool) {
	l, ok := s.licenses[id]
	return l, ok
}

// Len returns the number of stored licenses.
func (s *Store) Len() int { return len(s.licenses) }

// SkippedEntities returns how many EN records named unknown identifiers.
func (s *Store) SkippedEntities() int { return s.skippedEntities }

// SkippedHeaders returns how many HD records named unknown identifiers.
func (s *Store) SkippedHeaders() int { return s.skippedHeaders }

// Licenses returns the stored licenses in ascending identifier order.
// The order makes downstream first-wins decisions reproducible from run
// to run.
func (s *Store) Licenses() []*uls.License {
	ids := make([]string, 0, len(s.licenses))
	for id := range s.licenses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*uls.License, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.licenses[id])
	}
	return out
}
