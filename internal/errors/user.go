package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	{
		err: ErrMainClassNotFound,
		info: ErrorInfo{
			Message: "Could not auto-detect the provider main class.",
			Action: "Either set main_class in kitebuild.yaml explicitly, or ensure " +
				"exactly one source class extends ProviderServer (or KiteProvider).",
		},
	},
	{
		err: ErrSourceScan,
		info: ErrorInfo{
			Message: "Failed to read source files during main class detection.",
			Action:  "Check file permissions under src/main/java and retry.",
		},
	},
	{
		err: ErrManifestWrite,
		info: ErrorInfo{
			Message: "Failed to write a provider.json manifest.",
			Action:  "Check write permissions on the build directory.",
		},
	},
	{
		err: ErrLauncherWrite,
		info: ErrorInfo{
			Message: "Failed to create the distribution launcher script.",
			Action:  "Check write permissions on the install directory.",
		},
	},
	{
		err: ErrArchiveNotFound,
		info: ErrorInfo{
			Message: "The merged provider archive does not exist.",
			Action:  "Run the archive bundling step (shadowJar) before installMinDist.",
		},
	},
	{
		err: ErrGraphCycle,
		info: ErrorInfo{
			Message: "The build task graph contains a dependency cycle.",
			Action:  "Remove the cyclic dependsOn relationship between the listed tasks.",
		},
	},
	{
		err: ErrTaskNotFound,
		info: ErrorInfo{
			Message: "The requested task is not registered in the build graph.",
			Action:  "Run 'kitebuild graph' to list available tasks.",
		},
	},
	{
		err: ErrConfigInvalid,
		info: ErrorInfo{
			Message: "The kitebuild configuration is invalid.",
			Action:  "Fix the reported value in kitebuild.yaml and retry.",
		},
	},
	{
		err: ErrNotInProjectDir,
		info: ErrorInfo{
			Message: "No provider project was found in the current directory.",
			Action:  "Run kitebuild from the project root, or pass --project.",
		},
	},
}

// UserMessage returns a user-friendly message for the given error.
// Unknown errors fall back to the raw error text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Message
		}
	}
	return err.Error()
}

// Actionable returns a suggested action for the given error, or empty string
// when no remediation is known.
func Actionable(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Action
		}
	}
	return ""
}
