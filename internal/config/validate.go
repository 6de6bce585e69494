package config

import (
	"strings"

	"github.com/kitecorp/kitebuild/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - version must not be empty
//   - protocol_version must be >= 1
//   - sdk_version must not be empty
//   - name must not contain path separators (it forms directory names)
//   - scan.source_roots and scan.markers must not contain empty entries
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if strings.TrimSpace(cfg.Version) == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "version must not be empty")
	}

	if cfg.ProtocolVersion < 1 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"protocol_version must be >= 1, got %d", cfg.ProtocolVersion)
	}

	if strings.TrimSpace(cfg.SDKVersion) == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "sdk_version must not be empty")
	}

	if strings.ContainsAny(cfg.Name, `/\`) {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"name must not contain path separators, got %q", cfg.Name)
	}

	for _, root := range cfg.Scan.SourceRoots {
		if strings.TrimSpace(root) == "" {
			return errors.Wrap(errors.ErrConfigInvalid, "scan.source_roots entries must not be empty")
		}
	}

	for _, marker := range cfg.Scan.Markers {
		if strings.TrimSpace(marker) == "" {
			return errors.Wrap(errors.ErrConfigInvalid, "scan.markers entries must not be empty")
		}
	}

	return nil
}
