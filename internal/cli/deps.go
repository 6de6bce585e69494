package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kitecorp/kitebuild/internal/provider"
)

// depsOutput is the JSON shape of the deps command result.
type depsOutput struct {
	Dependencies []depJSON `json:"dependencies"`
}

type depJSON struct {
	Scope      string `json:"scope"`
	Coordinate string `json:"coordinate"`
}

// AddDepsCommand adds the deps command to the parent command.
func AddDepsCommand(parent *cobra.Command, flags *GlobalFlags) {
	convFlags := &ConventionFlags{}

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Show the SDK dependency coordinates",
		Long: `Deps prints the Kite provider SDK coordinates the build declares for
the host toolchain to resolve: the SDK in both the implementation and
the annotation-processing scope, at the configured sdk_version.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := GetLogger()
			ctx := logger.WithContext(cmd.Context())

			setup, err := setupProject(ctx, flags, convFlags.Overrides(cmd))
			if err != nil {
				return err
			}

			output := depsOutput{}
			for _, dep := range provider.SDKDependencies(setup.conv.SDKVersion()) {
				output.Dependencies = append(output.Dependencies, depJSON{
					Scope:      dep.Scope,
					Coordinate: dep.Coordinate(),
				})
			}

			return printResult(cmd.OutOrStdout(), flags.Output, output, func(w io.Writer) {
				for _, dep := range output.Dependencies {
					fmt.Fprintf(w, "%-20s %s\n", dep.Scope, dep.Coordinate)
				}
			})
		},
	}

	AddConventionFlags(cmd, convFlags)
	parent.AddCommand(cmd)
}
