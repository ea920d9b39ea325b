package formats

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"oai-dc-mapper/internal/cli/env"
)

var Command = &cobra.Command{
	Use:   "formats",
	Short: "Describe the metadata formats records are rendered in",
	Long: `This command writes an OAI-PMH ListMetadataFormats response for the
configured repository.

Usage examples:

	oai-dc-mapper formats
	oai-dc-mapper formats --indent ""
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

	engine, err := e.Engine()
	if err != nil {
		return err
	}

	root := e.Repository(engine).ListMetadataFormats(time.Now())

	return root.EncodeDocument(cmd.OutOrStdout(), opts.Indent)
}
