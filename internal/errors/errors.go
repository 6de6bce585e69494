// Package errors provides centralized error handling for kitebuild.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalid indicates an invalid configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrMainClassNotFound indicates that no explicit main class was
	// configured and source scanning found no class carrying a provider
	// marker. The build cannot proceed.
	ErrMainClassNotFound = errors.New("provider main class not found")

	// ErrSourceScan indicates that reading a source file or directory
	// failed during entry-point detection.
	ErrSourceScan = errors.New("source scan failed")

	// ErrManifestWrite indicates that a provider manifest could not be
	// written to its target location.
	ErrManifestWrite = errors.New("manifest write failed")

	// ErrLauncherWrite indicates that a distribution launcher script could
	// not be created or made executable.
	ErrLauncherWrite = errors.New("launcher write failed")

	// ErrArchiveNotFound indicates that an expected built archive does not
	// exist when a distribution task needs it.
	ErrArchiveNotFound = errors.New("archive not found")

	// ErrInvalidGraph indicates that the task graph definition is invalid
	// (duplicate tasks, unknown references, self-loops).
	ErrInvalidGraph = errors.New("invalid task graph")

	// ErrGraphCycle indicates that the task graph contains a dependency cycle.
	ErrGraphCycle = errors.New("task graph cycle detected")

	// ErrTaskNotFound indicates that a requested task is not registered in
	// the build graph.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskFailed indicates that a build task's action returned an error.
	ErrTaskFailed = errors.New("task failed")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrNotInProjectDir indicates that the command requires a provider
	// project directory but none was found.
	ErrNotInProjectDir = errors.New("not in a provider project directory")

	// ErrProjectConfigExists indicates an attempt to initialize a project
	// that already has a kitebuild configuration file.
	ErrProjectConfigExists = errors.New("project config already exists")
)
