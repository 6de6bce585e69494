package provider

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/kitecorp/kitebuild/internal/config"
	"github.com/kitecorp/kitebuild/internal/constants"
	"github.com/kitecorp/kitebuild/internal/dag"
	"github.com/kitecorp/kitebuild/internal/dist"
	kiteerrors "github.com/kitecorp/kitebuild/internal/errors"
	"github.com/kitecorp/kitebuild/internal/manifest"
)

// WireOptions carries the injectable external collaborators of the wiring.
type WireOptions struct {
	// BundleAction produces the single merged provider archive at the
	// project's MergedArchivePath. Nil means the default action, which only
	// verifies the archive already exists (the host toolchain built it).
	BundleAction dag.Action
}

// Wire registers the provider build tasks into the graph builder.
//
// The registered graph, with dependency edges in parentheses:
//
//	generateProviderInfo                 -> embedded manifest, no executable
//	processResources  (generateProviderInfo)
//	shadowJar         (processResources) -> external archive merging
//	installDist       (shadowJar)        -> full distribution
//	generateProviderManifest (installDist, finalizer of installDist)
//	installMinDist    (shadowJar)        -> minimized distribution
//
// Wire resolves the main class during wiring because the chosen entry point
// is a configuration-phase dependency of the bundled archive; resolution
// failure aborts wiring with a configuration error.
func Wire(ctx context.Context, b *dag.Builder, conv *config.Conventions, proj Project, opts WireOptions) error {
	name := conv.Name()
	version := conv.Version()
	protocolVersion := conv.ProtocolVersion()

	mainClass, err := conv.MainClass(ctx)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().
		Str("name", name).
		Str("main_class", mainClass).
		Msg("wiring provider build graph")

	embedded := manifest.Manifest{
		Name:            name,
		Version:         version,
		ProtocolVersion: protocolVersion,
	}
	distManifest := manifest.Manifest{
		Name:            name,
		Version:         version,
		ProtocolVersion: protocolVersion,
		Executable:      constants.LauncherRelPath,
	}

	archivePath := proj.MergedArchivePath(name)
	installDir := proj.InstallDir(name)
	minInstallDir := proj.MinInstallDir(name)

	bundle := opts.BundleAction
	if bundle == nil {
		bundle = verifyArchiveAction(archivePath)
	}

	tasks := []dag.Task{
		{
			Name:        constants.TaskGenerateProviderInfo,
			Description: "Generates the resource-embedded provider.json",
			Outputs:     []string{proj.EmbeddedManifestPath()},
			Action: func(context.Context) error {
				return embedded.Write(proj.EmbeddedManifestPath())
			},
		},
		{
			Name:        constants.TaskProcessResources,
			Description: "Stages static and generated resources",
			DependsOn:   []string{constants.TaskGenerateProviderInfo},
			Outputs:     []string{proj.StagedResourcesDir()},
			Action: func(context.Context) error {
				if err := dist.CopyTree(proj.ResourcesRoot(), proj.StagedResourcesDir()); err != nil {
					return err
				}
				return dist.CopyTree(proj.GeneratedResourcesDir(), proj.StagedResourcesDir())
			},
		},
		{
			Name:        constants.TaskShadowJar,
			Description: "Produces the merged provider archive (external)",
			DependsOn:   []string{constants.TaskProcessResources},
			Outputs:     []string{archivePath},
			Action:      bundle,
		},
		{
			Name:        constants.TaskInstallDist,
			Description: "Assembles the full distribution",
			DependsOn:   []string{constants.TaskShadowJar},
			Inputs:      []string{archivePath},
			Outputs:     []string{filepath.Join(installDir, constants.LauncherRelPath)},
			Action: func(context.Context) error {
				if err := dist.CopyArchives(proj.LibsDir(), installDir); err != nil {
					return err
				}
				return dist.WriteLauncher(installDir, dist.ArchiveFileName(name))
			},
		},
		{
			Name:        constants.TaskGenerateProviderManifest,
			Description: "Writes the full distribution provider.json",
			DependsOn:   []string{constants.TaskInstallDist},
			Outputs:     []string{filepath.Join(installDir, constants.ManifestFileName)},
			Action: func(context.Context) error {
				return distManifest.Write(filepath.Join(installDir, constants.ManifestFileName))
			},
		},
		{
			Name:        constants.TaskInstallMinDist,
			Description: "Assembles the minimized distribution",
			DependsOn:   []string{constants.TaskShadowJar},
			Inputs:      []string{archivePath},
			Outputs: []string{
				filepath.Join(minInstallDir, constants.LauncherRelPath),
				filepath.Join(minInstallDir, constants.ManifestFileName),
			},
			Action: func(context.Context) error {
				if err := dist.CopyArchive(archivePath, minInstallDir); err != nil {
					return err
				}
				if err := dist.WriteLauncher(minInstallDir, dist.ArchiveFileName(name)); err != nil {
					return err
				}
				return distManifest.Write(filepath.Join(minInstallDir, constants.ManifestFileName))
			},
		},
	}

	for _, task := range tasks {
		if err := b.Register(task); err != nil {
			return err
		}
	}

	// The distribution manifest trails installDist automatically; it is not
	// a gate for anything downstream of installDist.
	b.Finalize(constants.TaskInstallDist, constants.TaskGenerateProviderManifest)

	return nil
}

// verifyArchiveAction returns the default shadowJar action: it checks that
// the host toolchain already produced the merged archive.
func verifyArchiveAction(archivePath string) dag.Action {
	return func(context.Context) error {
		if _, err := os.Stat(archivePath); err != nil {
			return kiteerrors.Wrapf(kiteerrors.ErrArchiveNotFound,
				"expected merged archive at %s", archivePath)
		}
		return nil
	}
}
