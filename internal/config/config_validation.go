package config

import "time"

// Fallbacks applied after all sources are merged. Secrets have no defaults
// on purpose.
const (
	defaultHTTPAddress    = "localhost:8000"
	defaultTokenIssuer    = "kanmind"
	defaultTokenDuration  = 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultGuestRetention = 24 * time.Hour
)

// applyDefaults fills unset fields of the merged configuration with
// their fallback values.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Workers.GuestRetention == 0 {
		cfg.Workers.GuestRetention = defaultGuestRetention
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	// A guest account needs credentials; a password-less guest would be an
	// open door.
	if cfg.App.GuestEmail != "" && cfg.App.GuestPassword == "" {
		return ErrInvalidGuestConfigs
	}

	return nil
}
