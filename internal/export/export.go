// Package export renders the merged database as pipe-delimited text in
// callsign order.
package export

import (
	"bufio"
	"io"
	"sort"

	"github.com/N7DR/fcc-db/internal/merge"
	"github.com/N7DR/fcc-db/pkg/callsign"
	"github.com/N7DR/fcc-db/pkg/errors"
	"github.com/N7DR/fcc-db/pkg/uls"
)

// Write renders every stored license to w, one record per line, ordered
// by callsign, each line newline-terminated. When several licenses share
// a callsign only the first in identifier order is written; no attempt
// is made to reconcile the duplicates. Returns the number of records
// written.
func Write(w io.Writer, store *merge.Store) (int, error) {
	type entry struct {
		call string
		lic  *uls.License
	}

	seen := make(map[string]struct{}, store.Len())
	entries := make([]entry, 0, store.Len())
	for _, l := range store.Licenses() {
		if _, dup := seen[l.Callsign]; dup {
			continue
		}
		seen[l.Callsign] = struct{}{}
		entries = append(entries, entry{call: l.Callsign, lic: l})
	}

	sort.Slice(entries, func(i, j int) bool {
		return callsign.Less(entries[i].call, entries[j].call)
	})

	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := bw.WriteString(e.lic.String()); err != nil {
			return 0, errors.WrapIO("write", "", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return 0, errors.WrapIO("write", "", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, errors.WrapIO("write", "", err)
	}

	return len(entries), nil
}
