package config

import (
	"context"
	"sync"

	"github.com/kitecorp/kitebuild/internal/errors"
)

// MainClassResolver discovers the provider main class by scanning source
// files. It returns the qualified class name, or empty string when no
// candidate was found. I/O failures are returned as errors.
type MainClassResolver func(ctx context.Context) (string, error)

// Conventions resolves the effective build values from a loaded Config with
// a strict override order: explicit user value > discovered value > static
// default.
//
// Conventions is populated once at configuration time and is immutable
// afterwards apart from main-class memoization: when no explicit main class
// is configured, the resolver runs lazily on first access and its outcome
// (value or error) is cached for the remainder of the build.
type Conventions struct {
	cfg         *Config
	projectName string
	resolver    MainClassResolver

	mainOnce  sync.Once
	mainClass string
	mainErr   error
}

// NewConventions creates a Conventions store over the loaded config.
// projectName is the enclosing project's identifier, used as the name
// fallback. resolver may be nil when cfg.MainClass is set explicitly.
func NewConventions(cfg *Config, projectName string, resolver MainClassResolver) *Conventions {
	return &Conventions{
		cfg:         cfg,
		projectName: projectName,
		resolver:    resolver,
	}
}

// Name returns the provider name: the explicit config value, or the
// enclosing project's identifier.
func (c *Conventions) Name() string {
	if c.cfg.Name != "" {
		return c.cfg.Name
	}
	return c.projectName
}

// Version returns the artifact version.
func (c *Conventions) Version() string {
	return c.cfg.Version
}

// ProtocolVersion returns the provider protocol version.
func (c *Conventions) ProtocolVersion() int {
	return c.cfg.ProtocolVersion
}

// SDKVersion returns the Kite provider SDK version.
func (c *Conventions) SDKVersion() string {
	return c.cfg.SDKVersion
}

// MainClass returns the provider entry-point class.
//
// The explicit config value wins; otherwise the resolver runs exactly once
// and its result is memoized. When the resolver finds nothing, an error
// wrapping ErrMainClassNotFound is returned (and memoized), since the build
// cannot proceed without an entry point.
func (c *Conventions) MainClass(ctx context.Context) (string, error) {
	if c.cfg.MainClass != "" {
		return c.cfg.MainClass, nil
	}

	c.mainOnce.Do(func() {
		if c.resolver == nil {
			c.mainErr = notFoundErr()
			return
		}
		class, err := c.resolver(ctx)
		if err != nil {
			c.mainErr = err
			return
		}
		if class == "" {
			c.mainErr = notFoundErr()
			return
		}
		c.mainClass = class
	})

	return c.mainClass, c.mainErr
}

// notFoundErr builds the configuration error instructing the caller how to
// make the entry point resolvable.
func notFoundErr() error {
	return errors.Wrap(errors.ErrMainClassNotFound,
		"could not auto-detect main class: either set main_class explicitly "+
			"in kitebuild.yaml, or ensure your provider class extends ProviderServer")
}
