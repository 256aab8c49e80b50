// Package cmd provides the root command and CLI setup for fixturegen.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/diffscope/fixturegen/internal/adapter"
	"github.com/diffscope/fixturegen/internal/controller"
	"github.com/diffscope/fixturegen/internal/domain"
	m "github.com/diffscope/fixturegen/internal/model"
)

var fsAdapter adapter.CorpusFSAdapter
var gitAdapter adapter.GitAdapter
var mapStore adapter.MapStore
var workflow domain.Workflow
var ui controller.UI

// corpusDirFlag is a root-level flag shared by commands that read/write the
// corpus.
var corpusDirFlag string

// langFilter restricts applicable commands to a subset of corpus languages.
var langFilter []string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalCorpusFSAdapter()
	gitAdapter = adapter.NewLocalGitAdapter(
		viper.GetString(authorNameConfigKey),
		viper.GetString(authorEmailConfigKey),
	)
	mapStore = adapter.NewLocalMapStore()
	workflow = domain.NewWorkflow(fsAdapter, gitAdapter, mapStore, ui)
}

const rootLongDescription = `Fixturegen builds and audits the fixture corpus consumed by function-level
diff-classification tests. It carries a catalog of change scenarios (body
edits, signature edits, renames, comment-only edits, file moves and
deletions, refactors) in several languages, materializes each scenario as a
sequence of git commits, and keeps COMMIT_MAP.md in sync with the history it
creates.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixturegen",
		Short: "Fixture corpus builder for diff-classification tests",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&corpusDirFlag, corpusFlagName, "C",
			viper.GetString(corpusConfigKey),
			"corpus directory holding the sample files and git history",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(corpusFlagName), corpusConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&langFilter, langFlagName, "l", viper.GetStringSlice(langConfigKey), "restrict to a corpus language (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(langFlagName), langConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func corpusPath() m.Path {
	return m.Path(viper.GetString(corpusConfigKey))
}

func parseLanguages(values []string) []m.Language {
	langs := make([]m.Language, 0, len(values))
	for _, v := range values {
		langs = append(langs, m.Language(v))
	}

	return langs
}
