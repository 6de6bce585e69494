package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/kitecorp/kitebuild/internal/errors"
)

// newViperInstance creates a new Viper instance with standard kitebuild
// configuration: defaults, environment variable prefix (KITEBUILD_) and key
// replacer so nested keys map to env vars (scan.markers -> KITEBUILD_SCAN_MARKERS).
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("KITEBUILD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// viperDecoderOption returns the decoder configuration used when
// unmarshaling viper values into Config.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error. Missing config files are expected and not treated as errors.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (KITEBUILD_* prefix)
//  2. Project config (<projectDir>/kitebuild.yaml)
//  3. Global config (~/.kitebuild/config.yaml)
//  4. Built-in defaults
//
// For CLI flag overrides, use LoadWithOverrides instead.
//
// The function returns an error only for actual configuration problems,
// not for missing config files (which are expected in many scenarios).
func Load(ctx context.Context, projectDir string) (*Config, error) {
	return LoadWithOverrides(ctx, projectDir, nil)
}

// LoadWithOverrides loads configuration like Load and then applies the given
// overrides on top with the highest precedence. Overrides come from CLI
// flags; nil or empty values in the map are the caller's responsibility to
// omit.
func LoadWithOverrides(ctx context.Context, projectDir string, overrides map[string]any) (*Config, error) {
	v := newViperInstance()

	// Global config first (lower precedence), providing user-wide defaults.
	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}

	// Project config merges over global.
	if err := loadProjectConfig(v, projectDir); err != nil {
		return nil, err
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("name", cfg.Name).
		Str("main_class", cfg.MainClass).
		Int("protocol_version", cfg.ProtocolVersion).
		Str("sdk_version", cfg.SDKVersion).
		Msg("configuration loaded and unmarshaled")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// loadGlobalConfig attempts to load the global config file
// (~/.kitebuild/config.yaml). Returns nil if the file doesn't exist or the
// home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return nil //nolint:nilerr // No home directory means no global config
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// loadProjectConfig attempts to load the project config file, merging over
// any previously loaded global values. A missing file is not an error.
func loadProjectConfig(v *viper.Viper, projectDir string) error {
	path := ProjectConfigPath(projectDir)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}
