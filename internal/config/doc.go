// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// The resulting StructuredConfig is immutable after startup and is passed
// explicitly to the components that need it; no package reads configuration
// from ambient global state.
package config
