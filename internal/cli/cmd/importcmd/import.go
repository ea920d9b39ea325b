package importcmd

import (
	"errors"
	"fmt"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/spf13/cobra"

	"oai-dc-mapper/internal/cli/env"
	"oai-dc-mapper/internal/store"
)

var Command = &cobra.Command{
	Use:   "import <catalog.yaml>",
	Short: "Import a catalog file into the item store",
	Long: `This command loads items from a YAML catalog file into the item store
and the search index. Items with an existing id are replaced.

Usage examples:

1. Import a catalog:

	oai-dc-mapper import catalog.yaml

2. Import without touching the search index:

	oai-dc-mapper import catalog.yaml --no-index
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args[0])
	},
}

func runCommand(cmd *cobra.Command, path string) error {
	e, ok := env.FromContext(cmd.Context())
	if !ok {
		return errors.New("failed to get environment from context")
	}

	ctx, cancel := e.WithTimeout(cmd.Context())
	defer cancel()

	c, err := store.LoadCatalog(path)
	if err != nil {
		return err
	}

	diags := c.Validate()
	for _, w := range diags.Warnings {
		ancli.PrintWarn(w.String() + "\n")
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	d, err := e.Derivatives()
	if err != nil {
		return err
	}

	recs := c.Records(d)

	s, err := e.OpenStore()
	if err != nil {
		return err
	}
	defer s.Close()

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

	ancli.Okf("imported %d items from %s\n", len(recs), path)

	return nil
}
