// Package testutil provides testing utilities for kitebuild.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockAction indicates a mock task action failed (used in tests).
	ErrMockAction = errors.New("action failed")

	// ErrMockBundler indicates a mock archive bundling step failed (used in tests).
	ErrMockBundler = errors.New("bundler failed")

	// ErrMockResolver indicates a mock main class resolver failed (used in tests).
	ErrMockResolver = errors.New("resolver failed")
)
