package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// detectOutput is the JSON shape of the detect command result.
type detectOutput struct {
	MainClass string `json:"mainClass"`
	Explicit  bool   `json:"explicit"`
}

// AddDetectCommand adds the detect command to the parent command.
func AddDetectCommand(parent *cobra.Command, flags *GlobalFlags) {
	convFlags := &ConventionFlags{}

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Resolve the provider main class",
		Long: `Detect resolves the provider entry point the same way a build would:
an explicitly configured main_class wins, otherwise source roots are
scanned for a class extending the provider contract type.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := GetLogger()
			ctx := logger.WithContext(cmd.Context())

			setup, err := setupProject(ctx, flags, convFlags.Overrides(cmd))
			if err != nil {
				return err
			}

			mainClass, err := setup.conv.MainClass(ctx)
			if err != nil {
				return err
			}

			output := detectOutput{
				MainClass: mainClass,
				Explicit:  setup.cfg.MainClass != "",
			}
			return printResult(cmd.OutOrStdout(), flags.Output, output, func(w io.Writer) {
				fmt.Fprintln(w, mainClass)
			})
		},
	}

	AddConventionFlags(cmd, convFlags)
	parent.AddCommand(cmd)
}
