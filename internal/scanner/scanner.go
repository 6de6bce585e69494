// Package scanner implements static entry-point detection for provider builds.
//
// Detection is purely textual: source files are scanned for marker substrings
// identifying a class that extends the provider contract type, without
// compiling anything. The first file containing a marker wins and the scan
// short-circuits across all roots.
package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kitecorp/kitebuild/internal/constants"
	kiteerrors "github.com/kitecorp/kitebuild/internal/errors"
)

// Result is the outcome of an entry-point scan.
// It is computed once per build invocation and never mutated afterwards.
type Result struct {
	// Found reports whether any source file carried a provider marker.
	Found bool

	// MainClass is the fully qualified class name derived from the matching
	// file's path relative to its source root. Empty when Found is false.
	MainClass string
}

// Scanner locates the source file declaring the provider entry point.
//
// The zero value is not usable; construct with New.
type Scanner struct {
	markers []string
	ext     string
}

// New creates a Scanner detecting the given marker substrings in files with
// the given extension. When markers is empty, the standard direct and
// indirect provider markers are used.
func New(ext string, markers ...string) *Scanner {
	if len(markers) == 0 {
		markers = []string{constants.DirectMarker, constants.IndirectMarker}
	}
	if ext == "" {
		ext = constants.JavaSourceExt
	}
	return &Scanner{markers: markers, ext: ext}
}

// Scan walks each root in order and returns the qualified class name of the
// first file whose text contains any marker. The walk is sequential and
// short-circuits on the first match.
//
// Traversal order within a directory follows directory-listing order. The
// contract assumes at most one matching declaration per project; with
// multiple matches the first-visited file wins silently. Projects with more
// than one matching class must configure the main class explicitly.
//
// Any unreadable file or directory aborts the scan with an error wrapping
// ErrSourceScan; there is no partial result.
func (s *Scanner) Scan(ctx context.Context, roots ...string) (Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "scanner").Logger()

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		// Missing roots are skipped, matching conventional layouts where a
		// project declares roots that do not all exist.
		if _, err := os.Stat(root); os.IsNotExist(err) {
			logger.Debug().Str("root", root).Msg("source root does not exist, skipping")
			continue
		}

		class, err := s.scanDir(root, root)
		if err != nil {
			return Result{}, kiteerrors.Wrapf(kiteerrors.ErrSourceScan,
				"failed to scan source root %s: %v", root, err)
		}
		if class != "" {
			logger.Info().Str("main_class", class).Msg("auto-detected provider main class")
			return Result{Found: true, MainClass: class}, nil
		}
	}

	return Result{}, nil
}

// scanDir recursively scans currentDir, deriving qualified names relative to
// baseDir. It returns the qualified class name of the first match, or empty
// string when the subtree contains none.
func (s *Scanner) scanDir(baseDir, currentDir string) (string, error) {
	entries, err := os.ReadDir(currentDir)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		path := filepath.Join(currentDir, entry.Name())

		if entry.IsDir() {
			class, err := s.scanDir(baseDir, path)
			if err != nil {
				return "", err
			}
			if class != "" {
				return class, nil
			}
			continue
		}

		if !strings.HasSuffix(entry.Name(), s.ext) {
			continue
		}

		content, err := os.ReadFile(path) //nolint:gosec // Path derives from the configured source root
		if err != nil {
			return "", err
		}

		if s.containsMarker(string(content)) {
			return qualifiedName(baseDir, path, s.ext)
		}
	}

	return "", nil
}

// containsMarker reports whether text carries any configured marker.
func (s *Scanner) containsMarker(text string) bool {
	for _, marker := range s.markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// qualifiedName derives the fully qualified class name from a source file
// path: the path relative to its root, minus the source extension, with path
// separators replaced by the package separator.
func qualifiedName(baseDir, path, ext string) (string, error) {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return "", err
	}
	rel = strings.TrimSuffix(rel, ext)
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", "."), nil
}
