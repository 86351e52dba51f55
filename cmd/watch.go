package cmd

import (
	"github.com/spf13/cobra"
	"strings-diff/internal"
	"strings-diff/internal/configuration"
)

var (
	watchBasePath   string
	watchTags       string
	watchFailOnDiff bool
)

var watchCmd = &cobra.Command{
	Use:   "watch --base <strings.xml> <target.xml>...",
	Short: "Compare the given files and compare again whenever one of them changes",
	Long: `Runs the same comparison as the root command and keeps watching the base and
all target files. The report is printed again after every change until the
process is interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		options := comparisonOptions(cmd, args)
		debounce := configuration.CurrentConfig.Watch.Debounce
		return internal.RunWatch(cmd.Context(), options, debounce, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	addComparisonFlags(watchCmd, &watchBasePath, &watchTags, &watchFailOnDiff)
	_ = watchCmd.Flags().MarkHidden("fail-on-diff")

	rootCmd.AddCommand(watchCmd)
}
