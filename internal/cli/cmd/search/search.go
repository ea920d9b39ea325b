package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"oai-dc-mapper/internal/cli/env"
	"oai-dc-mapper/internal/oaipmh"
)

var Command = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the item index",
	Long: `This command prints the OAI identifiers of items matching a Bleve
query string. Without a query every indexed item matches.

Usage examples:

	oai-dc-mapper search harbor
	oai-dc-mapper search "subject:boats" --limit 10
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, strings.Join(args, " "))
	},
}

func runCommand(cmd *cobra.Command, query string) error {
	e, ok := env.FromContext(cmd.Context())
	if !ok {
		return errors.New("failed to get environment from context")
	}

	idx, err := e.OpenIndex()
	if err != nil {
		return err
	}
	defer idx.Close()

	ids, err := idx.Search(query, opts.Limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, id := range ids {
		fmt.Fprintf(out, "%d\t%s\n", id, oaipmh.Identifier(e.Config.RepositoryID, id))
	}

	return nil
}
