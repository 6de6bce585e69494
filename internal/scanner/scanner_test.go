package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kiteerrors "github.com/kitecorp/kitebuild/internal/errors"
)

// writeSource creates a source file under root with the given relative path
// and content, creating parent directories as needed.
func writeSource(t *testing.T, root, relPath, content string) {
	t.Helper()

	path := filepath.Join(root, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// TestScan_DirectMarker tests that a class extending ProviderServer is found
func TestScan_DirectMarker(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "cloud/kitelang/provider/aws/AwsProvider.java",
		"package cloud.kitelang.provider.aws;\n\npublic class AwsProvider extends ProviderServer {\n}\n")

	result, err := New("").Scan(context.Background(), root)

	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, "cloud.kitelang.provider.aws.AwsProvider", result.MainClass)
}

// TestScan_IndirectMarker tests that the indirect marker alone is sufficient
func TestScan_IndirectMarker(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "com/example/GcpProvider.java",
		"public class GcpProvider extends KiteProvider {\n}\n")

	result, err := New("").Scan(context.Background(), root)

	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, "com.example.GcpProvider", result.MainClass)
}

// TestScan_NoMatch tests that a tree without markers yields a not-found result
func TestScan_NoMatch(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "com/example/Helper.java",
		"public class Helper {\n}\n")

	result, err := New("").Scan(context.Background(), root)

	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Empty(t, result.MainClass)
}

// TestScan_TopLevelFile tests qualified name derivation for a file directly
// under the root
func TestScan_TopLevelFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "Provider.java", "class Provider extends ProviderServer {}")

	result, err := New("").Scan(context.Background(), root)

	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, "Provider", result.MainClass)
}

// TestScan_FirstVisitedWins tests the accepted limitation that with multiple
// matching declarations the first-visited file wins. os.ReadDir lists
// entries in lexical order, so the behavior is deterministic per traversal
// order even though ambiguity itself is not detected.
func TestScan_FirstVisitedWins(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "a/First.java", "class First extends ProviderServer {}")
	writeSource(t, root, "b/Second.java", "class Second extends ProviderServer {}")

	result, err := New("").Scan(context.Background(), root)

	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, "a.First", result.MainClass)
}

// TestScan_ShortCircuitsAcrossRoots tests that a match in the first root
// stops the scan before later roots are visited
func TestScan_ShortCircuitsAcrossRoots(t *testing.T) {
	t.Parallel()

	first := t.TempDir()
	second := t.TempDir()
	writeSource(t, first, "One.java", "class One extends KiteProvider {}")
	writeSource(t, second, "Two.java", "class Two extends ProviderServer {}")

	result, err := New("").Scan(context.Background(), first, second)

	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, "One", result.MainClass)
}

// TestScan_MissingRootSkipped tests that a declared but absent root is not
// an error
func TestScan_MissingRootSkipped(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "P.java", "class P extends ProviderServer {}")

	result, err := New("").Scan(context.Background(), filepath.Join(root, "does-not-exist"), root)

	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, "P", result.MainClass)
}

// TestScan_IgnoresOtherExtensions tests that only source files are inspected
func TestScan_IgnoresOtherExtensions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "notes.txt", "extends ProviderServer")

	result, err := New("").Scan(context.Background(), root)

	require.NoError(t, err)
	assert.False(t, result.Found)
}

// TestScan_CustomMarkers tests that the marker set is configurable
func TestScan_CustomMarkers(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "custom/Impl.java", "class Impl implements ProviderContract {}")

	result, err := New("", "implements ProviderContract").Scan(context.Background(), root)

	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, "custom.Impl", result.MainClass)
}

// TestScan_UnreadableDirFails tests that an unreadable directory aborts the
// scan with an error wrapping ErrSourceScan
func TestScan_UnreadableDirFails(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.MkdirAll(locked, 0o750))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) })

	_, err := New("").Scan(context.Background(), root)

	require.Error(t, err)
	require.ErrorIs(t, err, kiteerrors.ErrSourceScan)
}

// TestScan_CanceledContext tests that a canceled context stops the scan
func TestScan_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("").Scan(ctx, t.TempDir())

	require.ErrorIs(t, err, context.Canceled)
}
