package uls

// Comment is the typed projection of one CO record.
type Comment struct {
	ID          string
	Callsign    string
	CommentDate string
	Description string
	StatusCode  string
	StatusDate  string
}

// Key returns the join identifier.
func (c Comment) Key() string { return c.ID }

type commentIndex struct {
	id          int
	callsign    int
	commentDate int
	description int
	statusCode  int
	statusDate  int
}

var coIndex = resolveCommentIndex()

func resolveCommentIndex() commentIndex {
	s := MustSchema(CO)
	return commentIndex{
		id:          s.MustFieldIndex("Unique System Identifier"),
		callsign:    s.MustFieldIndex("Call Sign"),
		commentDate: s.MustFieldIndex("Comment Date"),
		description: s.MustFieldIndex("Description"),
		statusCode:  s.MustFieldIndex("Status Code"),
		statusDate:  s.MustFieldIndex("Status Date"),
	}
}

// CommentFromRecord projects a CO record onto named fields.
func CommentFromRecord(r Record) Comment {
	r.mustKind(CO)
	return Comment{
		ID:          r.Field(coIndex.id),
		Callsign:    r.Field(coIndex.callsign),
		CommentDate: r.Field(coIndex.commentDate),
		Description: r.Field(coIndex.description),
		StatusCode:  r.Field(coIndex.statusCode),
		StatusDate:  r.Field(coIndex.statusDate),
	}
}

// Comments projects a whole CO extract.
func Comments(records []Record) []Comment {
	out := make([]Comment, 0, len(records))
	for _, r := range records {
		out = append(out, CommentFromRecord(r))
	}
	return out
}
