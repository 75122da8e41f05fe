// Package config loads and merges the cliptide auth-service configuration
// from environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with mergo in priority order (env, then flags, then
// JSON), validated, and every unset policy field is filled with a named
// default so that thresholds and windows never appear as inline literals
// elsewhere in the codebase.
package config
