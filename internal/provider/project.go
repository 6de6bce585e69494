// Package provider wires provider build tasks into an explicit task graph.
//
// The wirer consumes resolved conventions and a project layout, and registers
// manifest generation and distribution assembly tasks with the dependency
// relationships that guarantee each manifest is produced after the artifact
// it describes. Compilation and archive merging stay external: their place
// in the graph is declared here, their actions are injected.
package provider

import (
	"path/filepath"

	"github.com/kitecorp/kitebuild/internal/constants"
	"github.com/kitecorp/kitebuild/internal/dist"
)

// Project describes the provider project's on-disk layout.
type Project struct {
	// Dir is the absolute path of the project root.
	Dir string

	// BuildDir is the build output directory. Empty means <Dir>/build.
	BuildDir string
}

// NewProject creates a Project rooted at dir with the conventional layout.
func NewProject(dir string) Project {
	return Project{Dir: dir, BuildDir: filepath.Join(dir, constants.BuildDir)}
}

// Name returns the enclosing project identifier: the base name of the
// project directory. It is the fallback provider name.
func (p Project) Name() string {
	return filepath.Base(p.Dir)
}

// SourceRoots resolves the configured source roots against the project root.
func (p Project) SourceRoots(roots []string) []string {
	resolved := make([]string, 0, len(roots))
	for _, root := range roots {
		resolved = append(resolved, filepath.Join(p.Dir, root))
	}
	return resolved
}

// ResourcesRoot returns the static resources directory (src/main/resources).
func (p Project) ResourcesRoot() string {
	return filepath.Join(p.Dir, constants.ResourcesRoot)
}

// GeneratedResourcesDir returns the directory where kitebuild generates
// resources merged into the provider archive.
func (p Project) GeneratedResourcesDir() string {
	return filepath.Join(p.BuildDir, constants.GeneratedResourcesDir)
}

// EmbeddedManifestPath returns the path of the resource-embedded manifest
// inside the generated resources directory.
func (p Project) EmbeddedManifestPath() string {
	return filepath.Join(p.GeneratedResourcesDir(), constants.EmbeddedManifestDir, constants.ManifestFileName)
}

// StagedResourcesDir returns the directory where processResources stages the
// merged resource set.
func (p Project) StagedResourcesDir() string {
	return filepath.Join(p.BuildDir, constants.StagedResourcesDir)
}

// LibsDir returns the directory where built archives land.
func (p Project) LibsDir() string {
	return filepath.Join(p.BuildDir, constants.LibsDir)
}

// MergedArchivePath returns the path of the single merged provider archive
// (<buildDir>/libs/<name>-provider.jar).
func (p Project) MergedArchivePath(name string) string {
	return filepath.Join(p.LibsDir(), dist.ArchiveFileName(name))
}

// InstallDir returns the full distribution directory
// (<buildDir>/install/<name>).
func (p Project) InstallDir(name string) string {
	return filepath.Join(p.BuildDir, constants.InstallDir, name)
}

// MinInstallDir returns the minimized distribution directory
// (<buildDir>/install/<name>-min).
func (p Project) MinInstallDir(name string) string {
	return filepath.Join(p.BuildDir, constants.InstallDir, name+constants.MinDistSuffix)
}
