package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"oai-dc-mapper/internal/cli/env"
	"oai-dc-mapper/internal/oaipmh"
	"oai-dc-mapper/internal/store"
	"oai-dc-mapper/internal/xmltree"
)

var Command = &cobra.Command{
	Use:   "render [id...]",
	Short: "Render stored items as oai_dc records",
	Long: `This command maps stored items to Dublin Core and writes them as an
OAI-PMH response.

Usage examples:

1. Render every stored item:

	oai-dc-mapper render

2. Render two items into a file:

	oai-dc-mapper render 12 42 -o records.xml

3. Render the items matching a search:

	oai-dc-mapper render --query "subject:boats"

4. Render one item as a GetRecord response:

	oai-dc-mapper render 42 --get
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := env.ParseIDs(args)
		if err != nil {
			return err
		}

		return runCommand(cmd, ids)
	},
}

func runCommand(cmd *cobra.Command, ids []int64) error {
	e, ok := env.FromContext(cmd.Context())
	if !ok {
		return errors.New("failed to get environment from context")
	}

	ctx, cancel := e.WithTimeout(cmd.Context())
	defer cancel()

	engine, err := e.Engine()
	if err != nil {
		return err
	}

	s, err := e.OpenStore()
	if err != nil {
		return err
	}
	defer s.Close()

	ids, err = selectIDs(ctx, e, s, ids)
	if err != nil {
		return err
	}

	repo := e.Repository(engine)

	slog.Debug("rendering", "items", len(ids), "workers", e.Config.Workers)

	records, err := renderRecords(ctx, s, repo, ids, e.Config.Workers)
	if err != nil {
		return err
	}

	var root *xmltree.Element

	now := time.Now()

	if opts.Get {
		if len(records) != 1 {
			return fmt.Errorf("--get needs exactly one item, got %d", len(records))
		}

		root = repo.GetRecord(now, oaipmh.Identifier(repo.ID, ids[0]), records[0])
	} else {
		root = repo.ListRecords(now, records)
	}

	var out io.Writer = cmd.OutOrStdout()

	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()

		out = f
	}

	return root.EncodeDocument(out, opts.Indent)
}

// selectIDs resolves which items to render when no ids were given.
func selectIDs(ctx context.Context, e *env.Env, s *store.Store, ids []int64) ([]int64, error) {
	if len(ids) > 0 {
		return ids, nil
	}

	if opts.Query == "" {
		return s.IDs(ctx)
	}

	idx, err := e.OpenIndex()
	if err != nil {
		return nil, err
	}
	defer idx.Close()

	return idx.Search(opts.Query, 0)
}

// renderRecords maps ids concurrently and returns the records in id order.
func renderRecords(ctx context.Context, s *store.Store, repo *oaipmh.Repository, ids []int64, workers int) ([]*xmltree.Element, error) {
	out := make([]*xmltree.Element, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, id := range ids {
		g.Go(func() error {
			h, err := s.Item(ctx, id)
			if err != nil {
				return err
			}

			rec, err := repo.Record(h)
			if err != nil {
				return err
			}

			out[i] = rec

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
