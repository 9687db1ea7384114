// Package pipeline runs the full merge: load the extracts, drop lapsed
// licenses, fold the streams together, validate, and export.
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/N7DR/fcc-db/internal/datfile"
	"github.com/N7DR/fcc-db/internal/export"
	"github.com/N7DR/fcc-db/internal/filter"
	"github.com/N7DR/fcc-db/internal/merge"
	"github.com/N7DR/fcc-db/pkg/dates"
	"github.com/N7DR/fcc-db/pkg/logging"
	"github.com/N7DR/fcc-db/pkg/uls"
)

// Options configures a run.
type Options struct {
	// Dir is the directory holding the four extract files.
	Dir string

	// Out receives the merged database.
	Out io.Writer

	// Today is the ISO reference date for expiry decisions. Empty means
	// the current UTC date.
	Today string
}

// Run executes the merge end to end and writes the result to opts.Out.
//
// The streams fold in a fixed order: amateur records first, since only
// they may create licenses, then comments, entities, and headers. Any
// inconsistency between the extracts aborts the run; the FCC publishes
// fresh extracts weekly, and a contradictory set is better replaced than
// repaired.
func Run(ctx context.Context, opts Options) error {
	log := logging.Ctx(ctx)
	start := time.Now()

	today := opts.Today
	if today == "" {
		today = dates.Today()
	}

	extracts, err := datfile.LoadAll(ctx, opts.Dir)
	if err != nil {
		return err
	}

	log.Info().
		Str("dir", opts.Dir).
		Int("am", len(extracts.AM.Records)).
		Int("co", len(extracts.CO.Records)).
		Int("en", len(extracts.EN.Records)).
		Int("hd", len(extracts.HD.Records)).
		Msg("Extracts loaded")

	amateurs := uls.Amateurs(extracts.AM.Records)
	comments := uls.Comments(extracts.CO.Records)
	entities := uls.Entities(extracts.EN.Records)
	headers := uls.LicenseHeaders(extracts.HD.Records)

	exclusions, err := filter.NewExclusions(headers, today)
	if err != nil {
		return err
	}

	log.Info().
		Str("today", today).
		Int("expired", exclusions.Expired()).
		Int("cancelled", exclusions.Cancelled()).
		Msg("Lapsed licenses excluded")

	before := [4]int{len(amateurs), len(comments), len(entities), len(headers)}
	amateurs = filter.Apply(exclusions, amateurs)
	comments = filter.Apply(exclusions, comments)
	entities = filter.Apply(exclusions, entities)
	headers = filter.Apply(exclusions, headers)

	log.Debug().
		Int("am", before[0]-len(amateurs)).
		Int("co", before[1]-len(comments)).
		Int("en", before[2]-len(entities)).
		Int("hd", before[3]-len(headers)).
		Msg("Dropped lapsed records per stream")

	store := merge.New()
	for _, a := range amateurs {
		store.MergeAmateur(a)
	}
	for _, c := range comments {
		if err := store.MergeComment(c); err != nil {
			return err
		}
	}
	for _, e := range entities {
		if err := store.MergeEntity(e); err != nil {
			return err
		}
	}
	for _, h := range headers {
		if err := store.MergeLicenseHeader(h); err != nil {
			return err
		}
	}

	if store.SkippedEntities() > 0 || store.SkippedHeaders() > 0 {
		log.Debug().
			Int("en", store.SkippedEntities()).
			Int("hd", store.SkippedHeaders()).
			Msg("Skipped records naming unknown identifiers")
	}

	removed := store.Validate()

	written, err := export.Write(opts.Out, store)
	if err != nil {
		return err
	}

	log.Info().
		Int("licenses", written).
		Int("no_callsign", removed).
		Int("skipped_en", store.SkippedEntities()).
		Int("skipped_hd", store.SkippedHeaders()).
		Dur("elapsed", time.Since(start)).
		Msg("Merge completed successfully")

	return nil
}
