package uls

// Entity is the typed projection of one EN record: the licensee's name
// and mailing address. The linked identifier fields at the tail of the
// layout are deliberately not projected; the unified output carries them
// as empty placeholders only.
type Entity struct {
	ID                     string
	Callsign               string
	EntityName             string
	FirstName              string
	MiddleInitial          string
	LastName               string
	Suffix                 string
	Phone                  string
	Fax                    string
	Email                  string
	StreetAddress          string
	City                   string
	State                  string
	ZipCode                string
	POBox                  string
	AttentionLine          string
	FRN                    string
	ApplicantTypeCode      string
	ApplicantTypeCodeOther string
	StatusCode             string
	StatusDate             string
}

// Key returns the join identifier.
func (e Entity) Key() string { return e.ID }

type entityIndex struct {
	id                     int
	callsign               int
	entityName             int
	firstName              int
	middleInitial          int
	lastName               int
	suffix                 int
	phone                  int
	fax                    int
	email                  int
	streetAddress          int
	city                   int
	state                  int
	zipCode                int
	poBox                  int
	attentionLine          int
	frn                    int
	applicantTypeCode      int
	applicantTypeCodeOther int
	statusCode             int
	statusDate             int
}

var enIndex = resolveEntityIndex()

func resolveEntityIndex() entityIndex {
	s := MustSchema(EN)
	return entityIndex{
		id:                     s.MustFieldIndex("Unique System Identifier"),
		callsign:               s.MustFieldIndex("Call Sign"),
		entityName:             s.MustFieldIndex("Entity Name"),
		firstName:              s.MustFieldIndex("First Name"),
		middleInitial:          s.MustFieldIndex("MI"),
		lastName:               s.MustFieldIndex("Last Name"),
		suffix:                 s.MustFieldIndex("Suffix"),
		phone:                  s.MustFieldIndex("Phone"),
		fax:                    s.MustFieldIndex("Fax"),
		email:                  s.MustFieldIndex("Email"),
		streetAddress:          s.MustFieldIndex("Street Address"),
		city:                   s.MustFieldIndex("City"),
		state:                  s.MustFieldIndex("State"),
		zipCode:                s.MustFieldIndex("Zip Code"),
		poBox:                  s.MustFieldIndex("PO Box"),
		attentionLine:          s.MustFieldIndex("Attention Line"),
		frn:                    s.MustFieldIndex("FCC Registration Number (FRN)"),
		applicantTypeCode:      s.MustFieldIndex("Applicant Type Code"),
		applicantTypeCodeOther: s.MustFieldIndex("Applicant Type Code Other"),
		statusCode:             s.MustFieldIndex("Status Code"),
		statusDate:             s.MustFieldIndex("Status Date"),
	}
}

// EntityFromRecord projects an EN record onto named fields.
func EntityFromRecord(r Record) Entity {
	r.mustKind(EN)
	return Entity{
		ID:                     r.Field(enIndex.id),
		Callsign:               r.Field(enIndex.callsign),
		EntityName:             r.Field(enIndex.entityName),
		FirstName:              r.Field(enIndex.firstName),
		MiddleInitial:          r.Field(enIndex.middleInitial),
		LastName:               r.Field(enIndex.lastName),
		Suffix:                 r.Field(enIndex.suffix),
		Phone:                  r.Field(enIndex.phone),
		Fax:                    r.Field(enIndex.fax),
		Email:                  r.Field(enIndex.email),
		StreetAddress:          r.Field(enIndex.streetAddress),
		City:                   r.Field(enIndex.city),
		State:                  r.Field(enIndex.state),
		ZipCode:                r.Field(enIndex.zipCode),
		POBox:                  r.Field(enIndex.poBox),
		AttentionLine:          r.Field(enIndex.attentionLine),
		FRN:                    r.Field(enIndex.frn),
		ApplicantTypeCode:      r.Field(enIndex.applicantTypeCode),
		ApplicantTypeCodeOther: r.Field(enIndex.applicantTypeCodeOther),
		StatusCode:             r.Field(enIndex.statusCode),
		StatusDate:             r.Field(enIndex.statusDate),
	}
}

// Entities projects a whole EN extract.
func Entities(records []Record) []Entity {
	out := make([]Entity, 0, len(records))
	for _, r := range records {
		out = append(out, EntityFromRecord(r))
	}
	return out
}
