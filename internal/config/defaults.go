package config

// DefaultConfig returns a Config with sensible defaults. Session lifetimes
// mirror a one-hour conversation window with a ten-minute sweep.
func DefaultConfig() *Config {
	return &Config{
		Port:                8080,
		AllowAllOrigins:     false,
		SessionTTLMinutes:   60,
		SessionPurgeMinutes: 10,
		MaxClarifications:   10,
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
	}
}
