package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/spf13/cobra"

	"oai-dc-mapper/internal/cli/cmd/check"
	"oai-dc-mapper/internal/cli/cmd/crosswalk"
	"oai-dc-mapper/internal/cli/cmd/formats"
	"oai-dc-mapper/internal/cli/cmd/importcmd"
	"oai-dc-mapper/internal/cli/cmd/ingest"
	"oai-dc-mapper/internal/cli/cmd/list"
	"oai-dc-mapper/internal/cli/cmd/render"
	"oai-dc-mapper/internal/cli/cmd/search"
	"oai-dc-mapper/internal/cli/env"
	"oai-dc-mapper/internal/config"
)

var configPath string

var RootCmd = &cobra.Command{
	Use:   "oai-dc-mapper",
	Short: "Map catalog items to OAI-PMH Dublin Core records",
	Long: `oai-dc-mapper keeps a store of catalog items and renders them as
oai_dc records for OAI-PMH harvesting.

Settings are read from the file given with --config and from OAIDC_*
environment variables (OAIDC_DATABASE, OAIDC_BASE_URL, OAIDC_FILES_URL,
OAIDC_REPOSITORY_ID, OAIDC_CROSSWALK, ...). Set DEBUG=1 for verbose output.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if misc.Truthy(os.Getenv("DEBUG")) {
			ancli.PrintOK(fmt.Sprintf("config: %+v\n", *cfg))
		}

		cmd.SetContext(env.WithEnv(cmd.Context(), &env.Env{Config: cfg}))

		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to a YAML configuration file.")

	RootCmd.AddCommand(
		render.Command,
		list.Command,
		importcmd.Command,
		ingest.Command,
		search.Command,
		check.Command,
		crosswalk.Command,
		formats.Command,
	)
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string) error {
	RootCmd.SetArgs(args)

	return RootCmd.ExecuteContext(ctx)
}
