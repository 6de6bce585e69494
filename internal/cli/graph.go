package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kitecorp/kitebuild/internal/dag"
	"github.com/kitecorp/kitebuild/internal/provider"
)

// graphOutput is the JSON shape of the graph command result.
type graphOutput struct {
	Targets []string        `json:"targets"`
	Plan    []graphTaskJSON `json:"plan"`
}

type graphTaskJSON struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	DependsOn   []string `json:"dependsOn,omitempty"`
}

// AddGraphCommand adds the graph command to the parent command.
func AddGraphCommand(parent *cobra.Command, flags *GlobalFlags) {
	convFlags := &ConventionFlags{}

	cmd := &cobra.Command{
		Use:   "graph [task...]",
		Short: "Show the build task schedule",
		Long: `Graph wires the provider task graph and prints the schedule for the
named targets (default: the full build) in execution order, without
running anything.`,
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

			plan, err := graph.Plan(targets...)
			if err != nil {
				return err
			}

			output := graphOutput{Targets: targets}
			for _, name := range plan {
				task, _ := graph.Task(name)
				output.Plan = append(output.Plan, graphTaskJSON{
					Name:        task.Name,
					Description: task.Description,
					DependsOn:   task.DependsOn,
				})
			}

			return printResult(cmd.OutOrStdout(), flags.Output, output, func(w io.Writer) {
				for i, entry := range output.Plan {
					deps := ""
					if len(entry.DependsOn) > 0 {
						deps = " (dependsOn: " + strings.Join(entry.DependsOn, ", ") + ")"
					}
					fmt.Fprintf(w, "%2d. %s%s\n", i+1, entry.Name, deps)
				}
			})
		},
	}

	AddConventionFlags(cmd, convFlags)
	parent.AddCommand(cmd)
}
