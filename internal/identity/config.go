package identity

import "os"

// DefaultDisplayName is used when the provider has no full name on record.
const DefaultDisplayName = "Usuária Chayıl"

// Config holds the identity provider connection settings.
type Config struct {
	URL       string
	AnonKey   string
	TimeoutMs int
}

// DefaultConfig returns a Config with sensible defaults. URL and AnonKey
// must come from the environment.
func DefaultConfig() Config {
	return Config{TimeoutMs: 10000}
}

// LoadConfig reads identity configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("CHAYIL_SUPABASE_URL"); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv("CHAYIL_SUPABASE_ANON_KEY"); v != "" {
		cfg.AnonKey = v
	}
	return cfg
}
