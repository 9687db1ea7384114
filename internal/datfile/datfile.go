// Package datfile reads pipe-delimited ULS extract files into parsed
// records. Loading is all-or-nothing: a single malformed record fails the
// whole file, because a partially loaded extract would merge into a
// silently incomplete database.
package datfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/N7DR/fcc-db/pkg/errors"
	"github.com/N7DR/fcc-db/pkg/logging"
	"github.com/N7DR/fcc-db/pkg/uls"
)

// lineBreakMarker replaces the newline glue when a record spans physical
// lines, so the break survives into the merged output as visible text.
const lineBreakMarker = "<LF>"

// File is one fully loaded extract.
type File struct {
	Schema  *uls.Schema
	Records []uls.Record
}

// Load reads the extract at path and parses every record against schema.
//
// Carriage returns are stripped before splitting, so DOS and Unix line
// endings load identically. A physical line carrying fewer delimiters
// than the layout requires is glued to the following line with the
// line-break marker until the record is complete; free-text fields in the
// real extracts do contain embedded newlines.
func Load(ctx context.Context, schema *uls.Schema, path string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapIO("stat", path, err)
	}
	if info.IsDir() {
		return nil, &errors.IOError{Operation: "open", Path: path, Message: "is a directory"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	content := strings.ReplaceAll(string(data), "\r", "")
	lines := splitLines(content)

	want := schema.NumFields() - 1
	records := make([]uls.Record, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		logical := lines[i]
		for strings.Count(logical, uls.Delimiter) < want && i+1 < len(lines) {
			i++
			logical += lineBreakMarker + lines[i]
		}

		rec, err := uls.ParseRecord(schema, strings.TrimSpace(logical))
		if err != nil {
			return nil, errors.WrapParse("dat", path, err)
		}
		records = append(records, rec)
	}

	logging.Ctx(ctx).Debug().
		Str("file", path).
		Str("kind", string(schema.Kind())).
		Int("records", len(records)).
		Msg("Loaded extract")

	return &File{Schema: schema, Records: records}, nil
}

// splitLines splits content the way the extracts are written: lines are
// newline-terminated, so the one trailing newline delimits the last line
// rather than opening an empty one. Empty content holds no lines.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// Extracts holds the four merge inputs.
type Extracts struct {
	AM *File
	CO *File
	EN *File
	HD *File
}

// LoadAll reads the four merge extracts from dir concurrently. Each kind
// loads from its fixed file name. The first failure cancels the remaining
// loads and is returned.
func LoadAll(ctx context.Context, dir string) (*Extracts, error) {
	var out Extracts

	g, ctx := errgroup.WithContext(ctx)
	load := func(kind uls.Kind, dst **File) func() error {
		return func() error {
			schema := uls.MustSchema(kind)
			f, err := Load(ctx, schema, filepath.Join(dir, schema.File()))
			if err != nil {
				return err
			}
			*dst = f
			return nil
		}
	}

	g.Go(load(uls.AM, &out.AM))
	g.Go(load(uls.CO, &out.CO))
	g.Go(load(uls.EN, &out.EN))
	g.Go(load(uls.HD, &out.HD))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
