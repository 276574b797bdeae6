// ABOUTME: Test helpers for config tests
// ABOUTME: Provides utilities for environment variable management

package config

import (
	"os"
	"testing"
)

// withEnv sets the given environment variables for the duration of a test,
// returning a cleanup function that restores the original values.
func withEnv(t *testing.T, vars map[string]string) func() {
	t.Helper()

	originals := make(map[string]string, len(vars)+1)
	originals["JWT_SECRET"] = os.Getenv("JWT_SECRET")
	for key := range vars {
		originals[key] = os.Getenv(key)
	}

	// JWT_SECRET is the one required setting; default it so tests only
	// declare the vars they care about.
	os.Setenv("JWT_SECRET", "test-secret")
	for key, value := range vars {
		os.Setenv(key, value)
	}

	return func() {
		for key, value := range originals {
			if value == "" {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, value)
			}
		}
	}
}
