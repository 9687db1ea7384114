package uls

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/N7DR/fcc-db/pkg/errors"
)

// Delimiter separates fields within a record line.
const Delimiter = "|"

// Record is one parsed line: exactly NumFields values in layout order.
type Record struct {
	schema *Schema
	fields []string
}

// ParseRecord parses one logical line against schema. The whole line is
// upper-cased before splitting. A line whose final character is the
// delimiter carries an unwritten empty last field; strings.Split already
// yields it, so the count check sees the complete field list.
func ParseRecord(schema *Schema, line string) (Record, error) {
	if line == "" {
		return Record{}, &errors.RecordError{Message: "empty record string"}
	}

	// A Caser is stateful, and extracts parse on several goroutines at once.
	upper := cases.Upper(language.Und)

	fields := strings.Split(upper.String(line), Delimiter)
	if len(fields) != schema.NumFields() {
		return Record{}, &errors.RecordError{
			Line:     line,
			Expected: schema.NumFields(),
			Found:    len(fields),
			Message:  "incorrect number of fields",
		}
	}

	return Record{schema: schema, fields: fields}, nil
}

// Schema returns the layout this record was parsed against.
func (r Record) Schema() *Schema { return r.schema }

// Field returns the value at position i. An out-of-range index is a
// programming error and panics.
func (r Record) Field(i int) string {
	if i < 0 || i >= len(r.fields) {
		panic(fmt.Sprintf("uls: field %d out of range for %s record", i, r.kind()))
	}
	return r.fields[i]
}

// String serializes the record: fields joined by the delimiter, with no
// delimiter after the last field.
func (r Record) String() string {
	return strings.Join(r.fields, Delimiter)
}

func (r Record) kind() Kind {
	if r.schema == nil {
		return "?"
	}
	return r.schema.kind
}

// mustKind panics unless the record carries layout kind. It guards the
// typed projections against cross-layout index confusion.
func (r Record) mustKind(kind Kind) {
	if r.schema == nil || r.schema.kind != kind {
		panic(fmt.Sprintf("uls: %s projection applied to %s record", kind, r.kind()))
	}
}
