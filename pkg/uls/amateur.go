package uls

// Amateur is the typed projection of one AM record: the fields the merge
// consumes, addressed by name.
type Amateur struct {
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
}

// Key returns the join identifier.
func (a Amateur) Key() string { return a.ID }

type amateurIndex struct {
	id                    int
	callsign              int
	operatorClass         int
	groupCode             int
	regionCode            int
	trusteeCallsign       int
	trusteeIndicator      int
	systematicChange      int
	vanityChange          int
	vanityRelationship    int
	previousCallsign      int
	previousOperatorClass int
	trusteeName           int
}

// Positions resolve from the layout catalog once at startup.
var amIndex = resolveAmateurIndex()

func resolveAmateurIndex() amateurIndex {
	s := MustSchema(AM)
	return amateurIndex{
		id:                    s.MustFieldIndex("Unique System Identifier"),
		callsign:              s.MustFieldIndex("Call Sign"),
		operatorClass:         s.MustFieldIndex("Operator Class"),
		groupCode:             s.MustFieldIndex("Group Code"),
		regionCode:            s.MustFieldIndex("Region Code"),
		trusteeCallsign:       s.MustFieldIndex("Trustee Call Sign"),
		trusteeIndicator:      s.MustFieldIndex("Trustee Indicator"),
		systematicChange:      s.MustFieldIndex("Systematic Call Sign Change"),
		vanityChange:          s.MustFieldIndex("Vanity Call Sign Change"),
		vanityRelationship:    s.MustFieldIndex("Vanity Relationship"),
		previousCallsign:      s.MustFieldIndex("Previous Call Sign"),
		previousOperatorClass: s.MustFieldIndex("Previous Operator Class"),
		trusteeName:           s.MustFieldIndex("Trustee Name"),
	}
}

// AmateurFromRecord projects an AM record onto named fields.
func AmateurFromRecord(r Record) Amateur {
	r.mustKind(AM)
	return Amateur{
		ID:                       r.Field(amIndex.id),
		Callsign:                 r.Field(amIndex.callsign),
		OperatorClass:            r.Field(amIndex.operatorClass),
		GroupCode:                r.Field(amIndex.groupCode),
		RegionCode:               r.Field(amIndex.regionCode),
		TrusteeCallsign:          r.Field(amIndex.trusteeCallsign),
		TrusteeIndicator:         r.Field(amIndex.trusteeIndicator),
		SystematicCallsignChange: r.Field(amIndex.systematicChange),
		VanityCallsignChange:     r.Field(amIndex.vanityChange),
		VanityRelationship:       r.Field(amIndex.vanityRelationship),
		PreviousCallsign:         r.Field(amIndex.previousCallsign),
		PreviousOperatorClass:    r.Field(amIndex.previousOperatorClass),
		TrusteeName:              r.Field(amIndex.trusteeName),
	}
}

// Amateurs projects a whole AM extract.
func Amateurs(records []Record) []Amateur {
	out := make([]Amateur, 0, len(records))
	for _, r := range records {
		out = append(out, AmateurFromRecord(r))
	}
	return out
}
