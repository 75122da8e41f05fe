package config

import "errors"

var (
	// ErrMissingDatabaseDSN is returned when no database connection string
	// was provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")

	// ErrMissingTokenSignKey is returned when no token signing key was
	// provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")

	// ErrInvalidAuthConfigs is returned when a lockout or two-factor
	// threshold is negative or otherwise unusable.
	ErrInvalidAuthConfigs = errors.New("invalid auth configs")
)
