package uls

// LicenseHeader is the typed projection of one HD record: license status
// and the dates that drive the temporal filter.
type LicenseHeader struct {
	ID                 string
	Callsign           string
	LicenseStatus      string
	RadioServiceCode   string
	GrantDate          string
	ExpiredDate        string
	CancellationDate   string
	EligibilityRuleNum string
	Revoked            string
	Convicted          string
	Adjudged           string
	EffectiveDate      string
	LastActionDate     string
	LicenseeNameChange string
}

// Key returns the join identifier.
func (h LicenseHeader) Key() string { return h.ID }

type headerIndex struct {
	id                 int
	callsign           int
	licenseStatus      int
	radioServiceCode   int
	grantDate          int
	expiredDate        int
	cancellationDate   int
	eligibilityRuleNum int
	revoked            int
	convicted          int
	adjudged           int
	effectiveDate      int
	lastActionDate     int
	licenseeNameChange int
}

var hdIndex = resolveHeaderIndex()

func resolveHeaderIndex() headerIndex {
	s := MustSchema(HD)
	return headerIndex{
		id:                 s.MustFieldIndex("Unique System Identifier"),
		callsign:           s.MustFieldIndex("Call Sign"),
		licenseStatus:      s.MustFieldIndex("License Status"),
		radioServiceCode:   s.MustFieldIndex("Radio Service Code"),
		grantDate:          s.MustFieldIndex("Grant Date"),
		expiredDate:        s.MustFieldIndex("Expired Date"),
		cancellationDate:   s.MustFieldIndex("Cancellation Date"),
		eligibilityRuleNum: s.MustFieldIndex("Eligibility Rule Num"),
		revoked:            s.MustFieldIndex("Revoked"),
		convicted:          s.MustFieldIndex("Convicted"),
		adjudged:           s.MustFieldIndex("Adjudged"),
		effectiveDate:      s.MustFieldIndex("Effective Date"),
		lastActionDate:     s.MustFieldIndex("Last Action Date"),
		licenseeNameChange: s.MustFieldIndex("Licensee Name Change"),
	}
}

// LicenseHeaderFromRecord projects an HD record onto named fields.
func LicenseHeaderFromRecord(r Record) LicenseHeader {
	r.mustKind(HD)
	return LicenseHeader{
		ID:                 r.Field(hdIndex.id),
		Callsign:           r.Field(hdIndex.callsign),
		LicenseStatus:      r.Field(hdIndex.licenseStatus),
		RadioServiceCode:   r.Field(hdIndex.radioServiceCode),
		GrantDate:          r.Field(hdIndex.grantDate),
		ExpiredDate:        r.Field(hdIndex.expiredDate),
		CancellationDate:   r.Field(hdIndex.cancellationDate),
		EligibilityRuleNum: r.Field(hdIndex.eligibilityRuleNum),
		Revoked:            r.Field(hdIndex.revoked),
		Convicted:          r.Field(hdIndex.convicted),
		Adjudged:           r.Field(hdIndex.adjudged),
		EffectiveDate:      r.Field(hdIndex.effectiveDate),
		LastActionDate:     r.Field(hdIndex.lastActionDate),
		LicenseeNameChange: r.Field(hdIndex.licenseeNameChange),
	}
}

// LicenseHeaders projects a whole HD extract.
func LicenseHeaders(records []Record) []LicenseHeader {
	out := make([]LicenseHeader, 0, len(records))
	for _, r := range records {
		out = append(out, LicenseHeaderFromRecord(r))
	}
	return out
}
