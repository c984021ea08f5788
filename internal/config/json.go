package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkurbatov/filevault/internal/flagx"
	"github.com/dkurbatov/filevault/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like
// "50ms" or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN       string         `json:"database_dsn"`
	PersistMaxRetries *uint64        `json:"persist_max_retries"`
	PersistBackoff    timex.Duration `json:"persist_backoff"`
	S3Region          string         `json:"s3_region"`
	S3RootUser        string         `json:"s3_root_user"`
	S3RootPassword    string         `json:"s3_root_password"`
	S3BaseEndpoint    string         `json:"s3_base_endpoint"`
	S3ShareExpiry     timex.Duration `json:"s3_share_expiry"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c or -config flags. Missing file path means no JSON is loaded.
// Read or unmarshal errors panic (caller should recover if desired).
// Only fields present in the JSON override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.PersistMaxRetries != nil {
		cfg.PersistMaxRetries = *jc.PersistMaxRetries
	}
	if jc.PersistBackoff.Duration != 0 {
		cfg.PersistBackoff = time.Duration(jc.PersistBackoff.Duration)
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3RootUser != "" {
		cfg.S3RootUser = jc.S3RootUser
	}
	if jc.S3RootPassword != "" {
		cfg.S3RootPassword = jc.S3RootPassword
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
	if jc.S3ShareExpiry.Duration != 0 {
		cfg.S3ShareExpiry = time.Duration(jc.S3ShareExpiry.Duration)
	}
}
