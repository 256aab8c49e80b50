package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/diffscope/fixturegen/internal/domain"
)

var verifyThreadsFlag int

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the commit map against the corpus git history",
		Long: `Verify the documentation integrity of an existing corpus: every recorded SHA
resolves to a commit, every listed file exists in that commit's tree, and
every claimed language has a parallel sample file. TBD placeholders are
reported as warnings and do not fail the check.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			report, err := workflow.Verify(context.Background(), domain.VerifyArgs{
				Corpus:  corpusPath(),
				Threads: viper.GetInt(verifyThreadsKey),
			})
			if err != nil {
				return err
			}

			if report.Failed() {
				return fmt.Errorf("verification failed with %d error(s)", report.Errors())
			}

			return nil
		},
	}

	configureVerifyFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func configureVerifyFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&verifyThreadsFlag, threadsFlagName, "t", viper.GetInt(verifyThreadsKey), "number of concurrent entry checks")
	bindFlagToConfig(cmd.Flags().Lookup(threadsFlagName), verifyThreadsKey)
}
