package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"strings-diff/cmd/global"
	"strings-diff/internal"
	"strings-diff/internal/configuration"
	"strings-diff/internal/logging"
	"strings-diff/internal/resources"
)

var (
	basePath   string
	tags       string
	failOnDiff bool

	exitCode = internal.ExitOk
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "strings-diff --base <strings.xml> <target.xml>...",
	Short: "Compare the resource keys of Android strings.xml files against a base file.",
	Long: `Reports, for every target file, the keys that exist in the base file but are
missing in the target and the keys that only exist in the target.

By default only <string name="..."> resources are compared, use --tags "*" to
compare every resource that carries a name attribute.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfiguration()
	},
	// this is the default command to run when no subcommand is specified
	RunE: func(cmd *cobra.Command, args []string) error {
		options := comparisonOptions(cmd, args)
		outcome, err := internal.RunComparison(options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		exitCode = internal.ExitCode(outcome, options.FailOnDiff)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/strings-diff.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	addComparisonFlags(rootCmd, &basePath, &tags, &failOnDiff)
}

// addComparisonFlags registers the flags shared by every command that runs a comparison
func addComparisonFlags(cmd *cobra.Command, base *string, tags *string, failOnDiff *bool) {
	cmd.Flags().StringVarP(base, "base", "b", "", "base XML file, keys it has but a target lacks are reported as missing")
	cmd.Flags().StringVarP(tags, "tags", "t", configuration.DefaultTags, `comma separated resource tags to compare, "*" compares every element with a name attribute`)
	cmd.Flags().BoolVarP(failOnDiff, "fail-on-diff", "", false, "exit with status 1 if any target has missing or extra keys")
	_ = cmd.MarkFlagRequired("base")
}

func comparisonOptions(cmd *cobra.Command, args []string) internal.Options {
	base, _ := cmd.Flags().GetString("base")
	return internal.Options{
		BasePath:    base,
		TargetPaths: args,
		Tags:        resolveTags(cmd),
		FailOnDiff:  resolveFailOnDiff(cmd),
		Color:       !global.NoColor && !global.NoStyle && isTerminal(cmd.OutOrStdout()),
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// resolveTags prefers the command line flag over the configuration file
func resolveTags(cmd *cobra.Command) string {
	if cmd.Flags().Changed("tags") {
		value, _ := cmd.Flags().GetString("tags")
		return value
	}
	if configuration.CurrentConfig.Tags != "" {
		return configuration.CurrentConfig.Tags
	}
	return configuration.DefaultTags
}

func resolveFailOnDiff(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("fail-on-diff") {
		value, _ := cmd.Flags().GetBool("fail-on-diff")
		return value
	}
	return configuration.CurrentConfig.FailOnDiff
}

func loadConfiguration() error {
	configPath, err := configuration.DetectAndReadConfigFile()
	if err != nil {
		return err
	}
	if configPath != "" {
		logging.Debug("Using configuration file at: %s", configPath)
	}
	err = configuration.LoadConfig()
	if err != nil {
		return err
	}
	err = configuration.Validate(configPath)
	if err != nil {
		return err
	}
	logging.SetLogFile(configuration.CurrentConfig.Log.File)
	return nil
}

func setupUi() {
	logging.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
		setupUi()
	})

	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(internal.ExitError)
	}
	os.Exit(exitCode)
}

func printError(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
	var fileErr *resources.FileError
	if errors.As(err, &fileErr) {
		logging.Debug("Failed to load %s", fileErr.Path)
	}
}
