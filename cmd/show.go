package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/diffscope/fixturegen/internal/domain"
)

var showContextFlag int

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <scenario-id>",
		Short: "Show the per-stage diffs of one scenario",
		Long: `Show what each stage of a scenario will look like as a commit: a unified
diff per touched file, replayed over an in-memory working tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return workflow.Show(context.Background(), domain.ShowArgs{
				ScenarioID: args[0],
				Languages:  parseLanguages(viper.GetStringSlice(langConfigKey)),
				Context:    viper.GetInt(diffContextKey),
			})
		},
	}

	configureShowFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func configureShowFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&showContextFlag, contextFlagName, "c", viper.GetInt(diffContextKey), "unified diff context lines")
	bindFlagToConfig(cmd.Flags().Lookup(contextFlagName), diffContextKey)
}
