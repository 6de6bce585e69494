package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kitecorp/kitebuild/internal/config"
	"github.com/kitecorp/kitebuild/internal/errors"
)

// AddInitCommand adds the init command to the parent command.
func AddInitCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter kitebuild.yaml",
		Long: `Init writes a kitebuild.yaml with the default conventions into the
project directory. The provider name is pre-filled from the directory
name; everything else keeps its default.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := flags.Project
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return errors.Wrap(err, "failed to determine working directory")
				}
				dir = wd
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return errors.Wrapf(errors.ErrNotInProjectDir, "invalid project directory %q: %v", dir, err)
			}

			path := config.ProjectConfigPath(absDir)
			if _, err := os.Stat(path); err == nil {
				return errors.Wrapf(errors.ErrProjectConfigExists, "%s", path)
			}

			cfg := config.DefaultConfig()
			cfg.Name = filepath.Base(absDir)

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, "failed to marshal config")
			}
			if err := os.WriteFile(path, data, 0o600); err != nil {
				return errors.Wrapf(err, "failed to write %s", path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	parent.AddCommand(cmd)
}
