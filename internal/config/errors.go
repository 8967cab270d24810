package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingSecretKey indicates that no token signing key was provided
	// by any configuration source.
	ErrMissingSecretKey = errors.New("missing token secret key (APP_SECRET_KEY)")

	// ErrMissingAudience indicates that no token audience was provided.
	ErrMissingAudience = errors.New("missing token audience (APP_AUDIENCE)")

	// ErrMissingDatabaseDSN indicates that no database connection string
	// was provided.
	ErrMissingDatabaseDSN = errors.New("missing database DSN (STORAGE_DB_DATABASE_URI)")

	// ErrUnknownEnvironment indicates that the configured environment is
	// not one of the known runtime profiles.
	ErrUnknownEnvironment = errors.New("unknown environment: expected local or development")
)
