package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings-diff/internal"
	"strings-diff/internal/resources"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetFlags restores every flag to its default, cobra keeps values and Changed between executions
func resetFlags(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	exitCode = internal.ExitOk
	resetFlags(rootCmd)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_FailOnDiff(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	base := writeFile(t, dir, "base.xml", `<resources><string name="a"/><string name="b"/></resources>`)
	target := writeFile(t, dir, "target.xml", `<resources><string name="b"/><string name="c"/></resources>`)

	// WHEN
	out, _, err := execute(t, "--base", base, "--fail-on-diff", target)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, internal.ExitDiff, exitCode)
	assert.Contains(t, out, "  - a\n")
	assert.Contains(t, out, "  + c\n")
}

func TestRoot_DiffWithoutFlag(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	base := writeFile(t, dir, "base.xml", `<resources><string name="a"/></resources>`)
	target := writeFile(t, dir, "target.xml", `<resources><string name="b"/></resources>`)

	// WHEN
	_, _, err := execute(t, "--base", base, target)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, internal.ExitOk, exitCode)
}

func TestRoot_NoDiffWithFlag(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	base := writeFile(t, dir, "base.xml", `<resources><string name="a"/></resources>`)

	// WHEN
	_, _, err := execute(t, "--base", base, "--tags", "*", "--fail-on-diff", base, base)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, internal.ExitOk, exitCode)
}

func TestRoot_MissingFile(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	base := writeFile(t, dir, "base.xml", `<resources><string name="a"/></resources>`)
	missing := filepath.Join(dir, "missing.xml")

	// WHEN
	_, _, err := execute(t, "--base", base, missing)

	// THEN
	require.Error(t, err)
	assert.True(t, errors.Is(err, resources.ErrFileNotFound))
}

func TestRoot_RequiresTarget(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	base := writeFile(t, dir, "base.xml", `<resources/>`)

	// WHEN
	_, _, err := execute(t, "--base", base)

	// THEN
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	// WHEN
	out, _, err := execute(t, "version")

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestRoot_DefaultsAfterFlaggedRun(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	base := writeFile(t, dir, "base.xml", `<resources><string name="a"/><plurals name="p"/></resources>`)
	target := writeFile(t, dir, "target.xml", `<resources><string name="b"/></resources>`)
	_, _, err := execute(t, "--base", base, "--tags", "*", "--fail-on-diff", target)
	require.NoError(t, err)
	require.Equal(t, internal.ExitDiff, exitCode)

	// WHEN
	out, _, err := execute(t, "--base", base, target)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, internal.ExitOk, exitCode)
	assert.Contains(t, out, "Tags   : string\n")
	assert.NotContains(t, out, "  - p\n")
}
