package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kiteerrors "github.com/kitecorp/kitebuild/internal/errors"
)

// TestIsValidOutputFormat tests output format validation
func TestIsValidOutputFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidOutputFormat(OutputText))
	assert.True(t, IsValidOutputFormat(OutputJSON))
	assert.False(t, IsValidOutputFormat("yaml"))
	assert.False(t, IsValidOutputFormat(""))
}

// TestConventionFlags_Overrides tests that only flags the user set land in
// the override map
func TestConventionFlags_Overrides(t *testing.T) {
	t.Parallel()

	var flags ConventionFlags
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	AddConventionFlags(cmd, &flags)
	cmd.SetArgs([]string{"--name", "x", "--protocol-version", "3"})
	cmd.SetOut(new(bytes.Buffer))
	require.NoError(t, cmd.Execute())

	overrides := flags.Overrides(cmd)

	assert.Equal(t, map[string]any{
		"name":             "x",
		"protocol_version": 3,
	}, overrides)
}

// TestConventionFlags_NoFlagsNoOverrides tests that untouched flags never
// clobber file or environment values
func TestConventionFlags_NoFlagsNoOverrides(t *testing.T) {
	t.Parallel()

	var flags ConventionFlags
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	AddConventionFlags(cmd, &flags)
	cmd.SetArgs([]string{})
	cmd.SetOut(new(bytes.Buffer))
	require.NoError(t, cmd.Execute())

	assert.Empty(t, flags.Overrides(cmd))
}

// TestPrintResult tests both output formats
func TestPrintResult(t *testing.T) {
	t.Parallel()

	var jsonBuf bytes.Buffer
	err := printResult(&jsonBuf, OutputJSON, map[string]string{"name": "gcp"}, func(io.Writer) {})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "gcp"}`, jsonBuf.String())

	var textBuf bytes.Buffer
	err = printResult(&textBuf, OutputText, nil, func(w io.Writer) {
		_, _ = io.WriteString(w, "name: gcp\n")
	})
	require.NoError(t, err)
	assert.Equal(t, "name: gcp\n", textBuf.String())
}

// TestPrintUserError tests the user-facing error rendering
func TestPrintUserError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUserError(&buf, kiteerrors.Wrap(kiteerrors.ErrArchiveNotFound, "during installMinDist"))

	out := buf.String()
	assert.Contains(t, out, "Error: The merged provider archive does not exist.")
	assert.Contains(t, out, "Hint: Run the archive bundling step (shadowJar) before installMinDist.")
}
