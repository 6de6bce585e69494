// Package dist assembles provider distribution directories.
//
// A distribution is a runnable tree: bin/provider launcher, lib/ archives
// and a provider.json manifest at the root. The full distribution carries
// every runtime archive; the minimized distribution carries the single
// merged provider archive.
package dist

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kitecorp/kitebuild/internal/constants"
	kiteerrors "github.com/kitecorp/kitebuild/internal/errors"
)

// Directory and file permission constants. The launcher must be executable
// by the provider host, which may run under a different user.
const (
	dirPerm      = 0o750
	filePerm     = 0o600
	launcherPerm = 0o755
)

// launcherTemplate is the POSIX launcher script. It resolves the archive
// path relative to its own location and passes the two diagnostic flags the
// provider runtime requires for direct buffer access.
const launcherTemplate = `#!/bin/sh
SCRIPT_DIR="$(cd "$(dirname "$0")" && pwd)"
exec java --add-opens=java.base/java.nio=ALL-UNNAMED --add-opens=java.base/sun.nio.ch=ALL-UNNAMED -jar "$SCRIPT_DIR/../lib/%s" "$@"
`

// ArchiveFileName returns the merged provider archive file name for a
// provider (<name>-provider.jar).
func ArchiveFileName(name string) string {
	return name + constants.ProviderArchiveSuffix
}

// RenderLauncher returns the launcher script text referencing the given
// archive file name.
func RenderLauncher(archiveName string) string {
	return fmt.Sprintf(launcherTemplate, archiveName)
}

// WriteLauncher writes the executable launcher script for archiveName at
// <distDir>/bin/provider, creating the bin directory as needed.
func WriteLauncher(distDir, archiveName string) error {
	launcherPath := filepath.Join(distDir, constants.LauncherRelPath)
	if err := os.MkdirAll(filepath.Dir(launcherPath), dirPerm); err != nil {
		return kiteerrors.Wrapf(kiteerrors.ErrLauncherWrite,
			"failed to create bin directory: %v", err)
	}
	if err := os.WriteFile(launcherPath, []byte(RenderLauncher(archiveName)), launcherPerm); err != nil {
		return kiteerrors.Wrapf(kiteerrors.ErrLauncherWrite,
			"failed to write %s: %v", launcherPath, err)
	}
	// WriteFile applies the mode only on creation; chmod covers re-runs over
	// an existing file with a stale umask-derived mode.
	if err := os.Chmod(launcherPath, launcherPerm); err != nil {
		return kiteerrors.Wrapf(kiteerrors.ErrLauncherWrite,
			"failed to mark %s executable: %v", launcherPath, err)
	}
	return nil
}

// CopyArchive copies a single archive file into <distDir>/lib/, creating the
// lib directory as needed.
func CopyArchive(archivePath, distDir string) error {
	libDir := filepath.Join(distDir, constants.DistLibDir)
	if err := os.MkdirAll(libDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create lib directory: %w", err)
	}
	return copyFile(archivePath, filepath.Join(libDir, filepath.Base(archivePath)))
}

// CopyArchives copies every .jar file from srcDir into <distDir>/lib/.
// A missing srcDir is an error: distribution assembly requires built
// archives to exist.
func CopyArchives(srcDir, distDir string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("failed to read archive directory %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".jar") {
			continue
		}
		if err := CopyArchive(filepath.Join(srcDir, entry.Name()), distDir); err != nil {
			return err
		}
	}
	return nil
}

// CopyTree recursively copies the contents of srcDir into dstDir, creating
// directories as needed. A missing srcDir is not an error so optional
// resource roots can be declared unconditionally.
func CopyTree(srcDir, dstDir string) error {
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		return nil
	}

	return filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dstDir, rel)
		if info.IsDir() {
			return os.MkdirAll(target, dirPerm)
		}
		return copyFile(path, target)
	})
}

// copyFile copies src to dst, creating dst's parent directory as needed.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}

	in, err := os.Open(src) //nolint:gosec // Paths derive from the project layout
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm) //nolint:gosec // See above
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
