package list

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"oai-dc-mapper/internal/cli/env"
	"oai-dc-mapper/internal/item"
	"oai-dc-mapper/internal/oaipmh"
)

var Command = &cobra.Command{
	Use:   "list",
	Short: "List stored items",
	Long: `This command prints one line per stored item with its OAI identifier,
datestamp and title.

Usage examples:

1. List everything:

	oai-dc-mapper list

2. List the items matching a search:

	oai-dc-mapper list --query harbor
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCommand(cmd)
	},
}

func runCommand(cmd *cobra.Command) error {
	e, ok := env.FromContext(cmd.Context())
	if !ok {
		return errors.New("failed to get environment from context")
	}

	ctx, cancel := e.WithTimeout(cmd.Context())
	defer cancel()

	s, err := e.OpenStore()
	if err != nil {
		return err
	}
	defer s.Close()

	var ids []int64

	if opts.Query != "" {
		idx, err := e.OpenIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		ids, err = idx.Search(opts.Query, 0)
		if err != nil {
			return err
		}
	} else {
		ids, err = s.IDs(ctx)
		if err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tIDENTIFIER\tDATESTAMP\tTITLE")

	for _, id := range ids {
		h, err := s.Item(ctx, id)
		if err != nil {
			return err
		}

		titles, err := h.FieldTexts(item.SetDublinCore, "title")
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", id,
			oaipmh.Identifier(e.Config.RepositoryID, id),
			oaipmh.Datestamp(h.Modified()),
			item.FirstText(titles))
	}

	return w.Flush()
}
