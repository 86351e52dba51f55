package cmd

import (
	"fmt"

	"strings-diff/cmd/global"

	"github.com/spf13/cobra"
)

var long bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strings-diff",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if global.Verbose {
			_, _ = fmt.Fprintf(out, "%s-%s-%s\n", global.Version, global.Commit, global.Date)
		} else if long {
			_, _ = fmt.Fprintf(out, "%s-%s\n", global.Version, global.Commit)
		} else {
			_, _ = fmt.Fprintf(out, "%s\n", global.Version)
		}
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&long, "long", "l", false, "Show the long version")

	rootCmd.AddCommand(versionCmd)
}
