package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/diffscope/fixturegen/internal/domain"
)

var buildDryRunFlag bool

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [scenario-ids...]",
		Short: "Materialize fixture scenarios as git commits",
		Long: `Build the fixture corpus: apply each selected scenario stage to the corpus
working tree, commit it, and record the commit in COMMIT_MAP.md. Without
arguments the whole catalog is built. Stages already recorded with a SHA are
skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return workflow.Build(context.Background(), domain.BuildArgs{
				Corpus:      corpusPath(),
				ScenarioIDs: args,
				Languages:   parseLanguages(viper.GetStringSlice(langConfigKey)),
				DryRun:      buildDryRunFlag,
			})
		},
	}

	configureBuildFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func configureBuildFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&buildDryRunFlag, dryRunFlagName, false, "report what would be committed without touching disk or git")
}
