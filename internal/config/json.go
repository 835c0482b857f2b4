package config

import (
	"encoding/json"
	"os"

	"github.com/mcorbu/shelterdesk/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only non-empty
// fields are copied into the runtime Config.
type JsonConfig struct {
	StoreDriver  string `json:"store_driver"`
	StoreDSN     string `json:"store_dsn"`
	SessionFile  string `json:"session_file"`
	DocumentsDir string `json:"documents_dir"`
	LogFormat    string `json:"log_format"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JSONConfigFlag().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlag()
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

	if jc.StoreDriver != "" {
		cfg.StoreDriver = jc.StoreDriver
	}
	if jc.StoreDSN != "" {
		cfg.StoreDSN = jc.StoreDSN
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.DocumentsDir != "" {
		cfg.DocumentsDir = jc.DocumentsDir
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}
