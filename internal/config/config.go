package config

import (
	"time"

	"github.com/dkurbatov/filevault/internal/blob"
)

// Config holds runtime settings for the FileVault CLI.
//
// Fields:
//   - DatabaseDSN: snapshot database. A plain path opens a local sqlite
//     file; a postgres:// URL selects PostgreSQL.
//   - PersistMaxRetries / PersistBackoff: retry budget for snapshot saves.
//   - S3*: settings for the s3:// content backend and presigned sharing.
type Config struct {
	DatabaseDSN string

	PersistMaxRetries uint64
	PersistBackoff    time.Duration

	S3Region       string
	S3RootUser     string
	S3RootPassword string
	S3BaseEndpoint string
	S3ShareExpiry  time.Duration
}

// LoadDefaults populates c with sensible development defaults.
// NOTE: The S3 credentials are insecure and should be overridden.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "filevault.db"
	c.PersistMaxRetries = 3
	c.PersistBackoff = 50 * time.Millisecond
	c.S3Region = "us-east-1"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3ShareExpiry = 15 * time.Minute
}

// S3 bundles the S3 fields into the blob package's config type.
func (c *Config) S3() blob.S3Config {
	return blob.S3Config{
		Region:       c.S3Region,
		RootUser:     c.S3RootUser,
		RootPassword: c.S3RootPassword,
		BaseEndpoint: c.S3BaseEndpoint,
		ShareExpiry:  c.S3ShareExpiry,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
