package ingest

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/spf13/cobra"

	"oai-dc-mapper/internal/cli/env"
	mediaingest "oai-dc-mapper/internal/ingest"
	"oai-dc-mapper/internal/item"
	"oai-dc-mapper/internal/store"
)

var Command = &cobra.Command{
	Use:   "ingest <dir>",
	Short: "Create items from tagged audio files",
	Long: `This command walks a directory for audio files, reads their tags and
stores one Sound item per file.

Usage examples:

1. Ingest a folder of oral histories:

	oai-dc-mapper ingest ./recordings

2. Ingest recent files only and keep a catalog copy:

	oai-dc-mapper ingest ./recordings --since 2024-01-01 --catalog recordings.yaml
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args[0])
	},
}

func runCommand(cmd *cobra.Command, root string) error {
	e, ok := env.FromContext(cmd.Context())
	if !ok {
		return errors.New("failed to get environment from context")
	}

	var since time.Time

	if opts.Since != "" {
		t, err := time.Parse(time.DateOnly, opts.Since)
		if err != nil {
			return fmt.Errorf("invalid --since: %w", err)
		}

		since = t
	}

	ctx, cancel := e.WithTimeout(cmd.Context())
	defer cancel()

	d, err := e.Derivatives()
	if err != nil {
		return err
	}

	s, err := e.OpenStore()
	if err != nil {
		return err
	}
	defer s.Close()

	first := opts.FirstID
	if first <= 0 {
		ids, err := s.IDs(ctx)
		if err != nil {
			return err
		}

		first = 1
		if len(ids) > 0 {
			first = slices.Max(ids) + 1
		}
	}

	start := time.Now()

	res, err := mediaingest.Dir(ctx, root, mediaingest.Options{
		FirstID:     first,
		Workers:     e.Config.Workers,
		Derivatives: d,
		Extensions:  e.Config.Extensions,
	})
	if err != nil {
		return err
	}

	for _, skip := range res.Skipped {
		ancli.PrintWarn(fmt.Sprintf("skipped %s: %v\n", skip.Path, skip.Err))
	}

	recs := res.Records
	if !since.IsZero() {
		recs = res.Since(since)
	}

	if err := save(ctx, e, s, recs); err != nil {
		return err
	}

	ancli.Okf("ingested %d files in %.2f seconds\n", len(recs), time.Since(start).Seconds())

	return nil
}

func save(ctx context.Context, e *env.Env, s *store.Store, recs []*item.Record) error {
	if err := s.PutAll(ctx, recs); err != nil {
		return err
	}

	if !opts.NoIndex {
		idx, err := e.OpenIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		if err := idx.IndexRecords(recs); err != nil {
			return err
		}
	}

	if opts.Catalog != "" {
		if err := store.WriteCatalog(store.CatalogFromRecords(recs), opts.Catalog); err != nil {
			return err
		}
	}

	return nil
}
