// Package manifest renders and writes provider.json artifact manifests.
//
// The manifest text is part of the external contract: key order, 4-space
// indentation and the conditional presence of the "executable" field are
// parsed positionally by some downstream integrations, so rendering is a
// fixed template rather than encoding/json marshaling.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	kiteerrors "github.com/kitecorp/kitebuild/internal/errors"
)

// Directory and file permission constants.
const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// Manifest describes a built provider artifact.
//
// Two manifests are emitted per build: a resource-embedded one without an
// executable path, and a distribution one with it. Both share identical
// Name/Version/ProtocolVersion.
type Manifest struct {
	// Name is the provider name (e.g., "aws", "gcp").
	Name string

	// Version is the artifact version.
	Version string

	// ProtocolVersion is the provider protocol version.
	ProtocolVersion int

	// Executable is the launcher path relative to the distribution root.
	// Empty for the resource-embedded manifest, which omits the field.
	Executable string
}

// Render returns the exact manifest text. The "executable" field is present
// if and only if m.Executable is non-empty, and is always the last field.
func (m Manifest) Render() string {
	if m.Executable == "" {
		return fmt.Sprintf("{\n"+
			"    \"name\": %q,\n"+
			"    \"version\": %q,\n"+
			"    \"protocolVersion\": %d\n"+
			"}\n", m.Name, m.Version, m.ProtocolVersion)
	}
	return fmt.Sprintf("{\n"+
		"    \"name\": %q,\n"+
		"    \"version\": %q,\n"+
		"    \"protocolVersion\": %d,\n"+
		"    \"executable\": %q\n"+
		"}\n", m.Name, m.Version, m.ProtocolVersion, m.Executable)
}

// Write renders the manifest and writes it to path, creating parent
// directories as needed.
//
// The write is all-or-nothing: content lands in a temporary file in the
// target directory first and is renamed into place, so a failed write never
// leaves a partial manifest behind.
func (m Manifest) Write(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return kiteerrors.Wrapf(kiteerrors.ErrManifestWrite,
			"failed to create manifest directory %s: %v", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return kiteerrors.Wrapf(kiteerrors.ErrManifestWrite,
			"failed to create temp file in %s: %v", dir, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.WriteString(m.Render()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return kiteerrors.Wrapf(kiteerrors.ErrManifestWrite,
			"failed to write %s: %v", path, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return kiteerrors.Wrapf(kiteerrors.ErrManifestWrite,
			"failed to close %s: %v", tmpName, err)
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return kiteerrors.Wrapf(kiteerrors.ErrManifestWrite,
			"failed to set permissions on %s: %v", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return kiteerrors.Wrapf(kiteerrors.ErrManifestWrite,
			"failed to rename %s to %s: %v", tmpName, path, err)
	}

	return nil
}
