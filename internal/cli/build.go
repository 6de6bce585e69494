package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kitecorp/kitebuild/internal/constants"
	"github.com/kitecorp/kitebuild/internal/dag"
	"github.com/kitecorp/kitebuild/internal/provider"
)

// defaultBuildTargets are the tasks run when none are named: both the full
// and the minimized distribution, each carrying its own manifest (the full
// distribution's manifest follows through the finalizer relationship).
func defaultBuildTargets() []string {
	return []string{constants.TaskInstallDist, constants.TaskInstallMinDist}
}

// buildResultOutput is the JSON shape of a build invocation result.
type buildResultOutput struct {
	Targets []string         `json:"targets"`
	Tasks   []taskResultJSON `json:"tasks"`
}

type taskResultJSON struct {
	Name     string `json:"name"`
	State    string `json:"state"`
	Duration string `json:"duration,omitempty"`
	Error    string `json:"error,omitempty"`
}

// AddBuildCommand adds the build command to the parent command.
func AddBuildCommand(parent *cobra.Command, flags *GlobalFlags) {
	convFlags := &ConventionFlags{}

	cmd := &cobra.Command{
		Use:   "build [task...]",
		Short: "Run provider build tasks",
		Long: `Build wires the provider task graph and executes the named tasks plus
everything they require, in dependency order. Without arguments it
assembles both the full and the minimized distribution.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetLogger()
			ctx := logger.WithContext(cmd.Context())

			setup, err := setupProject(ctx, flags, convFlags.Overrides(cmd))
			if err != nil {
				return err
			}

			builder := dag.NewBuilder()
			if err := provider.Wire(ctx, builder, setup.conv, setup.proj, provider.WireOptions{}); err != nil {
				return err
			}
			graph, err := builder.Build()
			if err != nil {
				return err
			}

			targets := args
			if len(targets) == 0 {
				targets = defaultBuildTargets()
			}

			results, runErr := dag.NewExecutor(logger).Run(ctx, graph, targets...)

			output := buildResultOutput{Targets: targets}
			for _, r := range results {
				jr := taskResultJSON{Name: r.Name, State: string(r.State)}
				if r.Duration > 0 {
					jr.Duration = r.Duration.String()
				}
				if r.Err != nil {
					jr.Error = r.Err.Error()
				}
				output.Tasks = append(output.Tasks, jr)
			}

			if err := printResult(cmd.OutOrStdout(), flags.Output, output, func(w io.Writer) {
				for _, r := range results {
					fmt.Fprintf(w, "%-28s %s\n", r.Name, r.State)
				}
			}); err != nil {
				return err
			}

			return runErr
		},
	}

	AddConventionFlags(cmd, convFlags)
	parent.AddCommand(cmd)
}
