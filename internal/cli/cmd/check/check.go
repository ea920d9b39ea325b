package check

import (
	"errors"
	"fmt"
	"io"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/spf13/cobra"

	"oai-dc-mapper/internal/cli/env"
	"oai-dc-mapper/internal/diagnostic"
	"oai-dc-mapper/internal/mapping"
)

var Command = &cobra.Command{
	Use:   "check [id...]",
	Short: "Validate the crosswalk and report unmapped item fields",
	Long: `This command validates the configured crosswalk and then checks stored
items for fields that will produce no Dublin Core output.

Usage examples:

1. Check the crosswalk and every stored item:

	oai-dc-mapper check

2. Check only the crosswalk file:

	OAIDC_CROSSWALK=crosswalk.yaml oai-dc-mapper check --crosswalk-only
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

	cw, err := e.Crosswalk()
	if err != nil {
		return err
	}

	diags := mapping.Validate(cw)
	if !diags.IsValid() || opts.CrosswalkOnly {
		return report(cmd.OutOrStdout(), diags)
	}

	engine, err := e.Engine()
	if err != nil {
		return err
	}

	s, err := e.OpenStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if len(ids) == 0 {
		ids, err = s.IDs(ctx)
		if err != nil {
			return err
		}
	}

	for _, id := range ids {
		h, err := s.Item(ctx, id)
		if err != nil {
			return err
		}

		diags.Merge(*engine.Check(h))
	}

	return report(cmd.OutOrStdout(), diags)
}

func report(w io.Writer, diags *diagnostic.Diagnostics) error {
	for _, d := range diags.All() {
		if opts.Quiet && d.Severity == diagnostic.DiagnosticInfo {
			continue
		}

		fmt.Fprintf(w, "%-7s %s\n", d.Severity, d)
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("check failed with %d errors", len(diags.Errors))
	}

	ancli.Okf("check passed with %d warnings\n", len(diags.Warnings))

	return nil
}
