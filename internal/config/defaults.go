package config

import (
	"github.com/spf13/viper"

	"github.com/kitecorp/kitebuild/internal/constants"
)

// DefaultConfig returns a new Config with the static defaults.
// These defaults are the base layer that config files, environment variables
// and CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		// Name: empty means the enclosing project directory name is used.
		// That value is computed, not static, so it is resolved by
		// Conventions rather than defaulted here.
		Name: "",

		// MainClass: empty means the entry-point scanner resolves it lazily
		// at first access.
		MainClass: "",

		Version:         constants.DefaultProjectVersion,
		ProtocolVersion: constants.DefaultProtocolVersion,
		SDKVersion:      constants.DefaultSDKVersion,

		Scan: ScanConfig{
			SourceRoots: []string{constants.JavaSourceRoot},
			Markers:     []string{constants.DirectMarker, constants.IndirectMarker},
		},
	}
}

// setDefaults registers the static defaults on a viper instance so lower
// layers fall through to them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", constants.DefaultProjectVersion)
	v.SetDefault("protocol_version", constants.DefaultProtocolVersion)
	v.SetDefault("sdk_version", constants.DefaultSDKVersion)
	v.SetDefault("scan.source_roots", []string{constants.JavaSourceRoot})
	v.SetDefault("scan.markers", []string{constants.DirectMarker, constants.IndirectMarker})
}
