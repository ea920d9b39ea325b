// Package main provides the CLI entrypoint for oai-dc-mapper.
//
// oai-dc-mapper is a Dublin Core crosswalk for catalog items that:
//   - Stores items in SQLite, imported from YAML catalogs or audio tags
//   - Indexes item texts for selection with Bleve queries
//   - Maps items to oai_dc through a configurable crosswalk
//   - Writes OAI-PMH ListRecords and GetRecord responses
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/shutdown"

	"oai-dc-mapper/internal/cli"
)

func main() {
	ancli.SetupSlog()

	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { shutdown.Monitor(cancel) }()

	if err := cli.Execute(ctx, args); err != nil {
		ancli.PrintErr(fmt.Sprintf("%v\n", err))
		return 1
	}

	return 0
}
