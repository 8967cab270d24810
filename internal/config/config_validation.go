package config

import (
	"time"
)

// knownEnvironments are the runtime profiles the service is deployed
// under. Any other value is a configuration mistake and fails startup.
var knownEnvironments = map[string]struct{}{
	"local":       {},
	"development": {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills in the
// documented defaults for optional values.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKey == "" {
		return ErrMissingSecretKey
	}

	if cfg.App.Audience == "" {
		return ErrMissingAudience
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.App.Environment == "" {
		cfg.App.Environment = DefaultEnvironment
	}
	if _, ok := knownEnvironments[cfg.App.Environment]; !ok {
		return ErrUnknownEnvironment
	}

	if cfg.App.BasicTokenTTL <= 0 {
		cfg.App.BasicTokenTTL = DefaultBasicTokenTTL
	}
	if cfg.App.SessionTokenTTL <= 0 {
		cfg.App.SessionTokenTTL = DefaultSessionTokenTTL
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	return nil
}

// parseDuration converts a Go duration string to time.Duration, returning
// zero for empty or malformed input so that merge fallbacks apply.
func parseDuration(s string) time.Duration {
	if s == "" {
		return 0
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}

	return d
}
