package provider

import (
	"fmt"

	"github.com/kitecorp/kitebuild/internal/constants"
)

// Dependency scopes understood by the host JVM toolchain.
const (
	// ScopeImplementation is the main compile/runtime dependency scope.
	ScopeImplementation = "implementation"

	// ScopeAnnotationProcessor is the annotation-processing dependency scope.
	ScopeAnnotationProcessor = "annotationProcessor"
)

// Dependency is a dependency coordinate declared for the host toolchain to
// resolve. kitebuild only declares coordinates; resolution and download are
// the toolchain's concern.
type Dependency struct {
	// Group is the Maven group identifier.
	Group string

	// Artifact is the Maven artifact identifier.
	Artifact string

	// Version is the artifact version.
	Version string

	// Scope is the dependency scope the coordinate belongs to.
	Scope string
}

// Coordinate returns the group:artifact:version form of the dependency.
func (d Dependency) Coordinate() string {
	return fmt.Sprintf("%s:%s:%s", d.Group, d.Artifact, d.Version)
}

// SDKDependencies returns the Kite provider SDK coordinates a provider build
// requires: the SDK in both the implementation and annotation-processing
// scopes, at the configured SDK version.
func SDKDependencies(sdkVersion string) []Dependency {
	return []Dependency{
		{
			Group:    constants.SDKGroup,
			Artifact: constants.SDKArtifact,
			Version:  sdkVersion,
			Scope:    ScopeImplementation,
		},
		{
			Group:    constants.SDKGroup,
			Artifact: constants.SDKArtifact,
			Version:  sdkVersion,
			Scope:    ScopeAnnotationProcessor,
		},
	}
}
