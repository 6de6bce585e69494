package dist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArchiveFileName tests the merged archive naming convention
func TestArchiveFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x-provider.jar", ArchiveFileName("x"))
	assert.Equal(t, "aws-provider.jar", ArchiveFileName("aws"))
}

// TestRenderLauncher tests the launcher script content
func TestRenderLauncher(t *testing.T) {
	t.Parallel()

	script := RenderLauncher("x-provider.jar")

	assert.Contains(t, script, "#!/bin/sh")
	assert.Contains(t, script, `SCRIPT_DIR="$(cd "$(dirname "$0")" && pwd)"`)
	assert.Contains(t, script, "--add-opens=java.base/java.nio=ALL-UNNAMED")
	assert.Contains(t, script, "--add-opens=java.base/sun.nio.ch=ALL-UNNAMED")
	assert.Contains(t, script, `"$SCRIPT_DIR/../lib/x-provider.jar"`)
	assert.Contains(t, script, `"$@"`)
}

// TestWriteLauncher tests that the launcher lands at bin/provider with the
// execute bit set
func TestWriteLauncher(t *testing.T) {
	t.Parallel()

	distDir := t.TempDir()

	require.NoError(t, WriteLauncher(distDir, "gcp-provider.jar"))

	path := filepath.Join(distDir, "bin", "provider")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111, "launcher must be executable")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, RenderLauncher("gcp-provider.jar"), string(data))
}

// TestWriteLauncher_Rerun tests that re-running restores the execute bit on
// an existing launcher
func TestWriteLauncher_Rerun(t *testing.T) {
	t.Parallel()

	distDir := t.TempDir()
	require.NoError(t, WriteLauncher(distDir, "a-provider.jar"))

	path := filepath.Join(distDir, "bin", "provider")
	require.NoError(t, os.Chmod(path, 0o600))

	require.NoError(t, WriteLauncher(distDir, "a-provider.jar"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111)
}

// TestCopyArchive tests copying a single archive into lib/
func TestCopyArchive(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	distDir := t.TempDir()
	archive := filepath.Join(srcDir, "x-provider.jar")
	require.NoError(t, os.WriteFile(archive, []byte("jar-bytes"), 0o600))

	require.NoError(t, CopyArchive(archive, distDir))

	data, err := os.ReadFile(filepath.Join(distDir, "lib", "x-provider.jar"))
	require.NoError(t, err)
	assert.Equal(t, "jar-bytes", string(data))
}

// TestCopyArchives tests that only .jar files are copied
func TestCopyArchives(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	distDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.jar"), []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "b.jar"), []byte("b"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "notes.txt"), []byte("n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "sub"), 0o750))

	require.NoError(t, CopyArchives(srcDir, distDir))

	entries, err := os.ReadDir(filepath.Join(distDir, "lib"))
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"a.jar", "b.jar"}, names)
}

// TestCopyArchives_MissingSource tests that assembly requires built archives
func TestCopyArchives_MissingSource(t *testing.T) {
	t.Parallel()

	err := CopyArchives(filepath.Join(t.TempDir(), "missing"), t.TempDir())

	require.Error(t, err)
}

// TestCopyTree tests recursive copying
func TestCopyTree(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	dstDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "META-INF", "kite"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "META-INF", "kite", "provider.json"), []byte("{}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "top.txt"), []byte("t"), 0o600))

	require.NoError(t, CopyTree(srcDir, dstDir))

	data, err := os.ReadFile(filepath.Join(dstDir, "META-INF", "kite", "provider.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
	_, err = os.Stat(filepath.Join(dstDir, "top.txt"))
	require.NoError(t, err)
}

// TestCopyTree_MissingSource tests that optional resource roots may be absent
func TestCopyTree_MissingSource(t *testing.T) {
	t.Parallel()

	require.NoError(t, CopyTree(filepath.Join(t.TempDir(), "missing"), t.TempDir()))
}
