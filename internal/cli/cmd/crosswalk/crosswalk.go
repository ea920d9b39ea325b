package crosswalk

import (
	"errors"
	"fmt"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/spf13/cobra"

	"oai-dc-mapper/internal/cli/env"
	"oai-dc-mapper/internal/dublincore"
	"oai-dc-mapper/internal/mapping"
)

var Command = &cobra.Command{
	Use:   "crosswalk",
	Short: "Print the effective crosswalk",
	Long: `This command prints the crosswalk rules in output order as YAML. The
output is a valid crosswalk file and can be edited and configured with
OAIDC_CROSSWALK.

Usage examples:

	oai-dc-mapper crosswalk
	oai-dc-mapper crosswalk --default -w crosswalk.yaml
	oai-dc-mapper crosswalk --handlers
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

	if opts.Handlers {
		out := cmd.OutOrStdout()
		for _, k := range dublincore.Handlers() {
			fmt.Fprintln(out, k)
		}

		return nil
	}

	cw := mapping.DefaultCrosswalk()

	if !opts.Default {
		var err error

		cw, err = e.Crosswalk()
		if err != nil {
			return err
		}
	}

	if opts.Write != "" {
		if err := mapping.WriteFile(cw, opts.Write); err != nil {
			return err
		}

		ancli.Okf("wrote %d rules to %s\n", len(cw.Rules), opts.Write)

		return nil
	}

	data, err := mapping.Marshal(cw)
	if err != nil {
		return fmt.Errorf("failed to marshal crosswalk: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
