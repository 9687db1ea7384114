package uls

import "strings"

// License is the unified record the merge accumulates, one per unique
// system identifier. Field order in Row mirrors the FCC output layout
// exactly; every field serializes as-is, so an unset field exports as an
// empty value.
type License struct {
	ID                       string
	Callsign                 string
	OperatorClass            string
	GroupCode                string
	RegionCode               string
	TrusteeCallsign          string
	TrusteeIndicator         string
	SystematicCallsignChange string
	VanityCallsignChange     string
	VanityRelationship       string
	PreviousCallsign         string
	PreviousOperatorClass    string
	TrusteeName              string
	CommentDate              string
	Description              string
	COStatusCode             string
	COStatusDate             string
	EntityName               string
	FirstName                string
	MiddleInitial            string
	LastName                 string
	Suffix                   string
	Phone                    string
	Fax                      string
	Email                    string
	StreetAddress            string
	City                     string
	State                    string
	ZipCode                  string
	POBox                    string
	AttentionLine            string
	FRN                      string
	ApplicantTypeCode        string
	ApplicantTypeCodeOther   string
	ENStatusCode             string
	ENStatusDate             string
	LicenseStatus            string
	RadioServiceCode         string
	GrantDate                string
	ExpiredDate              string
	CancellationDate         string
	EligibilityRuleNum       string
	Revoked                  string
	Convicted                string
	Adjudged                 string
	EffectiveDate            string
	LastActionDate           string
	LicenseeNameChange       string

	// Carried for layout compatibility, never populated by the merge.
	LinkedID       string
	LinkedCallsign string
}

// Row returns the field values in output layout order.
func (l *License) Row() []string {
	return []string{
		l.ID,
		l.Callsign,
		l.OperatorClass,
		l.GroupCode,
		l.RegionCode,
		l.TrusteeCallsign,
		l.TrusteeIndicator,
		l.SystematicCallsignChange,
		l.VanityCallsignChange,
		l.VanityRelationship,
		l.PreviousCallsign,
		l.PreviousOperatorClass,
		l.TrusteeName,
		l.CommentDate,
		l.Description,
		l.COStatusCode,
		l.COStatusDate,
		l.EntityName,
		l.FirstName,
		l.MiddleInitial,
		l.LastName,
		l.Suffix,
		l.Phone,
		l.Fax,
		l.Email,
		l.StreetAddress,
		l.City,
		l.State,
		l.ZipCode,
		l.POBox,
		l.AttentionLine,
		l.FRN,
		l.ApplicantTypeCode,
		l.ApplicantTypeCodeOther,
		l.ENStatusCode,
		l.ENStatusDate,
		l.LicenseStatus,
		l.RadioServiceCode,
		l.GrantDate,
		l.ExpiredDate,
		l.CancellationDate,
		l.EligibilityRuleNum,
		l.Revoked,
		l.Convicted,
		l.Adjudged,
		l.EffectiveDate,
		l.LastActionDate,
		l.LicenseeNameChange,
		l.LinkedID,
		l.LinkedCallsign,
	}
}

// String serializes the license in output layout order, fields joined by
// the delimiter.
func (l *License) String() string {
	return strings.Join(l.Row(), Delimiter)
}
