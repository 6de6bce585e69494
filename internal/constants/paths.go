package constants

// Directory names and paths used by kitebuild for organizing data.
const (
	// KitebuildHome is the hidden directory name where kitebuild stores
	// user-wide data. This directory is created in the user's home directory.
	KitebuildHome = ".kitebuild"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.kitebuild/logs/kitebuild.log
	CLILogFileName = "kitebuild.log"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global kitebuild configuration file.
	// This file is located in the kitebuild home directory.
	GlobalConfigName = "config.yaml"

	// ProjectConfigName is the name of the project-specific configuration file.
	// This file is located in the project root directory.
	ProjectConfigName = "kitebuild.yaml"
)

// Project layout conventions, relative to the project root.
const (
	// JavaSourceRoot is the conventional main source root of a JVM project.
	JavaSourceRoot = "src/main/java"

	// ResourcesRoot is the conventional static resources root.
	ResourcesRoot = "src/main/resources"

	// JavaSourceExt is the source-file extension the scanner inspects.
	JavaSourceExt = ".java"

	// BuildDir is the conventional build output directory.
	BuildDir = "build"

	// LibsDir is the directory under BuildDir where built archives land.
	LibsDir = "libs"

	// GeneratedResourcesDir is the directory under BuildDir where kitebuild
	// generates resources merged into the provider archive.
	GeneratedResourcesDir = "generated/resources/kite"

	// StagedResourcesDir is the directory under BuildDir where
	// processResources stages the merged resource set.
	StagedResourcesDir = "resources/main"

	// InstallDir is the directory under BuildDir where distributions are
	// assembled.
	InstallDir = "install"
)

// Distribution layout conventions, relative to a distribution root.
const (
	// ManifestFileName is the provider manifest file name.
	ManifestFileName = "provider.json"

	// EmbeddedManifestDir is the resource path under which the embedded
	// manifest is placed, relative to the generated resources directory.
	EmbeddedManifestDir = "META-INF/kite"

	// LauncherRelPath is the launcher script path inside a distribution,
	// and the value of the manifest "executable" field.
	LauncherRelPath = "bin/provider"

	// DistLibDir is the directory inside a distribution holding archives.
	DistLibDir = "lib"

	// MinDistSuffix is appended to the provider name to form the minimized
	// distribution directory name.
	MinDistSuffix = "-min"

	// ProviderArchiveSuffix is appended to the provider name to form the
	// merged archive file name (<name>-provider.jar).
	ProviderArchiveSuffix = "-provider.jar"
)
