package config

import "time"

// Config is the top-level service configuration, corresponding to .srsbot.yml.
type Config struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`

	// SessionTTLMinutes is how long an idle session survives before eviction.
	SessionTTLMinutes int `yaml:"session_ttl_minutes" koanf:"session_ttl_minutes"`
	// SessionPurgeMinutes is how often expired sessions are swept.
	SessionPurgeMinutes int `yaml:"session_purge_minutes" koanf:"session_purge_minutes"`

	// MaxClarifications caps the clarification queue per document.
	MaxClarifications int `yaml:"max_clarifications" koanf:"max_clarifications"`

	// VocabularyFile optionally overrides the built-in analysis tables.
	VocabularyFile string `yaml:"vocabulary_file" koanf:"vocabulary_file"`

	Log LogConfig `yaml:"log" koanf:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
	// File enables an additional JSON log file with rotation when non-empty.
	File       string `yaml:"file" koanf:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" koanf:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" koanf:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" koanf:"max_age_days"`
}

// SessionTTL returns the session TTL as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// SessionPurgeInterval returns the sweep interval as a duration.
func (c *Config) SessionPurgeInterval() time.Duration {
	return time.Duration(c.SessionPurgeMinutes) * time.Minute
}
