// Package config provides configuration management for kitebuild with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (KITEBUILD_* prefix)
//  3. Project config (kitebuild.yaml)
//  4. Global config (~/.kitebuild/config.yaml)
//  5. Built-in defaults
//
// On top of the loaded Config, Conventions resolves the effective build
// values with a strict override order: explicit user value > discovered
// value > static default.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

// Config is the root configuration structure for kitebuild.
// It mirrors the four-option configuration surface of a provider project
// plus scanning conventions.
type Config struct {
	// Name is the provider name used in manifests and distribution paths.
	// Empty means derive it from the enclosing project directory name.
	Name string `yaml:"name" mapstructure:"name"`

	// MainClass is the fully qualified provider entry-point class.
	// Empty means auto-detect it by scanning source files.
	MainClass string `yaml:"main_class" mapstructure:"main_class"`

	// Version is the artifact version written into manifests.
	// Default: "0.1.0"
	Version string `yaml:"version" mapstructure:"version"`

	// ProtocolVersion is the provider protocol version.
	// Default: 1
	ProtocolVersion int `yaml:"protocol_version" mapstructure:"protocol_version"`

	// SDKVersion is the Kite provider SDK version added to the compile and
	// annotation-processing dependency scopes.
	// Default: "0.1.0"
	SDKVersion string `yaml:"sdk_version" mapstructure:"sdk_version"`

	// Scan contains settings for entry-point detection.
	Scan ScanConfig `yaml:"scan" mapstructure:"scan"`
}

// ScanConfig contains settings for static entry-point detection.
type ScanConfig struct {
	// SourceRoots are the source directories scanned for provider markers,
	// relative to the project root.
	// Default: ["src/main/java"]
	SourceRoots []string `yaml:"source_roots" mapstructure:"source_roots"`

	// Markers are the marker substrings identifying a provider class.
	// Default: ["extends ProviderServer", "extends KiteProvider"]
	Markers []string `yaml:"markers" mapstructure:"markers"`
}
