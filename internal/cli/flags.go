package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
)

// Output format constants.
const (
	// OutputText is the default human-readable output format.
	OutputText = "text"
	// OutputJSON is the machine-readable JSON output format.
	OutputJSON = "json"
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Project is the provider project directory. Empty means the current
	// working directory.
	Project string
	// Output specifies the output format (text or json).
	Output string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
}

// ConventionFlags holds the per-command overrides for the four configuration
// options of a provider build. Only flags the user actually set are applied,
// so explicit values keep the highest precedence without clobbering config
// file values with flag defaults.
type ConventionFlags struct {
	// Name overrides the provider name.
	Name string
	// MainClass overrides the auto-detected entry point.
	MainClass string
	// ProtocolVersion overrides the provider protocol version.
	ProtocolVersion int
	// SDKVersion overrides the SDK version.
	SDKVersion string
	// ProjectVersion overrides the artifact version.
	ProjectVersion string
}

// AddGlobalFlags adds global flags to a command.
// These flags are available to all subcommands via PersistentFlags.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVarP(&flags.Project, "project", "p", "", "provider project directory (default: current directory)")
	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", OutputText, "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// AddConventionFlags adds the convention override flags to a command.
func AddConventionFlags(cmd *cobra.Command, flags *ConventionFlags) {
	cmd.Flags().StringVar(&flags.Name, "name", "", "provider name (default: project directory name)")
	cmd.Flags().StringVar(&flags.MainClass, "main-class", "", "provider main class (default: auto-detected)")
	cmd.Flags().IntVar(&flags.ProtocolVersion, "protocol-version", 0, "provider protocol version (default: 1)")
	cmd.Flags().StringVar(&flags.SDKVersion, "sdk-version", "", "Kite provider SDK version")
	cmd.Flags().StringVar(&flags.ProjectVersion, "project-version", "", "artifact version written into manifests")
}

// Overrides collects the convention flags the user actually set into a
// config override map keyed by config path.
func (f *ConventionFlags) Overrides(cmd *cobra.Command) map[string]any {
	overrides := make(map[string]any)
	if cmd.Flags().Changed("name") {
		overrides["name"] = f.Name
	}
	if cmd.Flags().Changed("main-class") {
		overrides["main_class"] = f.MainClass
	}
	if cmd.Flags().Changed("protocol-version") {
		overrides["protocol_version"] = f.ProtocolVersion
	}
	if cmd.Flags().Changed("sdk-version") {
		overrides["sdk_version"] = f.SDKVersion
	}
	if cmd.Flags().Changed("project-version") {
		overrides["version"] = f.ProjectVersion
	}
	return overrides
}

// BindGlobalFlags binds global flags to Viper for configuration file and
// environment variable support. The KITEBUILD_ prefix is used for
// environment variables (e.g., KITEBUILD_OUTPUT, KITEBUILD_VERBOSE).
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	// Use Root().PersistentFlags() to find flags defined on the root command,
	// even when called from a subcommand's PersistentPreRunE.
	rootFlags := cmd.Root().PersistentFlags()

	for _, name := range []string{"project", "output", "verbose", "quiet"} {
		if err := v.BindPFlag(name, rootFlags.Lookup(name)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix("KITEBUILD")
	v.AutomaticEnv()

	return nil
}

// ValidOutputFormats returns the list of valid output format values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat checks if the given format is a valid output format.
func IsValidOutputFormat(format string) bool {
	for _, valid := range ValidOutputFormats() {
		if format == valid {
			return true
		}
	}
	return false
}
