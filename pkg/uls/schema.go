package uls

import (
	"fmt"
	"io/fs"
	"path"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/N7DR/fcc-db/internal/embedded"
	"github.com/N7DR/fcc-db/pkg/errors"
)

// Schema describes the named, ordered fields of one record layout.
type Schema struct {
	kind        Kind
	file        string
	description string
	names       []string
	index       map[string]int
}

// schemaDoc is the shape of one embedded layout catalog.
type schemaDoc struct {
	Kind        string   `yaml:"kind"`
	File        string   `yaml:"file"`
	Description string   `yaml:"description"`
	Fields      []string `yaml:"fields"`
}

var schemas = mustLoadSchemas()

// mustLoadSchemas decodes every embedded layout catalog. The catalogs
// ship inside the binary, so any failure here is a build defect.
func mustLoadSchemas() map[Kind]*Schema {
	loaded, err := loadSchemas(embedded.FS, "schemas")
	if err != nil {
		panic(fmt.Sprintf("uls: loading embedded layout catalogs: %v", err))
	}
	return loaded
}

func loadSchemas(fsys fs.FS, dir string) (map[Kind]*Schema, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.WrapIO("read", dir, err)
	}

	loaded := make(map[Kind]*Schema, len(entries))
	for _, entry := range entries {
		name := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.WrapIO("read", name, err)
		}

		var doc schemaDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapParse("yaml", name, err)
		}
		if doc.Kind == "" || len(doc.Fields) == 0 {
			return nil, errors.NewParseError("yaml", name, "layout catalog needs a kind and at least one field", nil)
		}

		kind := Kind(doc.Kind)
		if _, dup := loaded[kind]; dup {
			return nil, errors.NewParseError("yaml", name, fmt.Sprintf("duplicate catalog for kind %s", kind), nil)
		}
		loaded[kind] = newSchema(kind, doc)
	}

	for _, kind := range Kinds {
		if _, ok := loaded[kind]; !ok {
			return nil, errors.NewNotFoundError("layout catalog", string(kind))
		}
	}

	return loaded, nil
}

func newSchema(kind Kind, doc schemaDoc) *Schema {
	index := make(map[string]int, len(doc.Fields))
	for i, name := range doc.Fields {
		// First occurrence wins; the HD layout repeats "Reserved".
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	return &Schema{
		kind:        kind,
		file:        doc.File,
		description: doc.Description,
		names:       doc.Fields,
		index:       index,
	}
}

// Lookup returns the layout for kind.
func Lookup(kind Kind) (*Schema, error) {
	s, ok := schemas[kind]
	if !ok {
		return nil, errors.NewNotFoundError("layout", string(kind))
	}
	return s, nil
}

// MustSchema returns the layout for kind, panicking when it is unknown.
// Intended for the fixed kinds wired at compile time.
func MustSchema(kind Kind) *Schema {
	s, err := Lookup(kind)
	if err != nil {
		panic(err)
	}
	return s
}

// Schemas returns every known layout in canonical order.
func Schemas() []*Schema {
	out := make([]*Schema, 0, len(Kinds))
	for _, kind := range Kinds {
		out = append(out, schemas[kind])
	}
	return out
}

// Kind returns the layout's record kind.
func (s *Schema) Kind() Kind { return s.kind }

// File returns the fixed name of the extract file carrying this layout,
// or "" for the output layout, which has no source file.
func (s *Schema) File() string { return s.file }

// Description returns the layout's one-line description.
func (s *Schema) Description() string { return s.description }

// NumFields returns the exact number of fields every record of this
// layout carries.
func (s *Schema) NumFields() int { return len(s.names) }

// FieldNames returns the ordered field names.
func (s *Schema) FieldNames() []string { return slices.Clone(s.names) }

// FieldIndex returns the position of the named field. When a name appears
// more than once the first occurrence is returned.
func (s *Schema) FieldIndex(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// MustFieldIndex is FieldIndex for fields known to exist. It panics on an
// unknown name, which means the catalog and the typed projections have
// drifted apart.
func (s *Schema) MustFieldIndex(name string) int {
	i, ok := s.index[name]
	if !ok {
		panic(errors.NewNotFoundError("field", fmt.Sprintf("%q in %s layout", name, s.kind)))
	}
	return i
}
