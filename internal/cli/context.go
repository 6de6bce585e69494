package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/kitecorp/kitebuild/internal/config"
	"github.com/kitecorp/kitebuild/internal/constants"
	"github.com/kitecorp/kitebuild/internal/errors"
	"github.com/kitecorp/kitebuild/internal/provider"
	"github.com/kitecorp/kitebuild/internal/scanner"
)

// projectSetup bundles the configuration-phase state shared by commands:
// the project layout, the loaded config and the convention store.
type projectSetup struct {
	proj provider.Project
	cfg  *config.Config
	conv *config.Conventions
}

// setupProject resolves the project directory, loads layered configuration
// with the given flag overrides, and constructs the convention store with a
// scanner-backed main class resolver.
func setupProject(ctx context.Context, flags *GlobalFlags, overrides map[string]any) (*projectSetup, error) {
	dir := flags.Project
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to determine working directory")
		}
		dir = wd
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotInProjectDir, "invalid project directory %q: %v", dir, err)
	}
	if info, err := os.Stat(absDir); err != nil || !info.IsDir() {
		return nil, errors.Wrapf(errors.ErrNotInProjectDir, "%s", absDir)
	}

	cfg, err := config.LoadWithOverrides(ctx, absDir, overrides)
	if err != nil {
		return nil, err
	}

	proj := provider.NewProject(absDir)

	resolver := func(ctx context.Context) (string, error) {
		s := scanner.New(constants.JavaSourceExt, cfg.Scan.Markers...)
		result, err := s.Scan(ctx, proj.SourceRoots(cfg.Scan.SourceRoots)...)
		if err != nil {
			return "", err
		}
		if !result.Found {
			return "", nil
		}
		return result.MainClass, nil
	}

	return &projectSetup{
		proj: proj,
		cfg:  cfg,
		conv: config.NewConventions(cfg, proj.Name(), resolver),
	}, nil
}
