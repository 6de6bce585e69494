// Package constants provides centralized constant values used throughout kitebuild.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Provider build defaults.
const (
	// DefaultProtocolVersion is the provider protocol version used when the
	// project does not configure one.
	DefaultProtocolVersion = 1

	// DefaultSDKVersion is the baseline Kite provider SDK version used when
	// the project does not configure one.
	DefaultSDKVersion = "0.1.0"

	// DefaultProjectVersion is the artifact version used when the project
	// does not configure one.
	DefaultProjectVersion = "0.1.0"
)

// Entry-point detection markers. Detection is purely textual over uncompiled
// source, so these are raw substrings rather than parsed declarations.
const (
	// DirectMarker identifies a class extending the SDK server type directly.
	DirectMarker = "extends ProviderServer"

	// IndirectMarker identifies a class extending the convenience base type,
	// which itself extends the SDK server type.
	IndirectMarker = "extends KiteProvider"
)

// SDK dependency coordinates declared for the host toolchain to resolve.
const (
	// SDKGroup is the Maven group of the Kite provider SDK.
	SDKGroup = "cloud.kitelang"

	// SDKArtifact is the Maven artifact name of the Kite provider SDK.
	SDKArtifact = "kite-provider-sdk"
)

// Task names registered into the build graph. These are part of the CLI
// surface (kitebuild build <task>) and must remain stable.
const (
	// TaskGenerateProviderInfo generates the resource-embedded provider.json.
	TaskGenerateProviderInfo = "generateProviderInfo"

	// TaskProcessResources stages static and generated resources.
	TaskProcessResources = "processResources"

	// TaskInstallDist assembles the full distribution directory.
	TaskInstallDist = "installDist"

	// TaskGenerateProviderManifest writes the distribution provider.json.
	TaskGenerateProviderManifest = "generateProviderManifest"

	// TaskShadowJar produces the single merged provider archive. The action
	// is supplied by the host toolchain; kitebuild only wires its position
	// in the graph.
	TaskShadowJar = "shadowJar"

	// TaskInstallMinDist assembles the minimized distribution directory.
	TaskInstallMinDist = "installMinDist"
)
