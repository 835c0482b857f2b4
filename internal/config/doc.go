// Package config loads runtime configuration for the ShelterDesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-r string   store driver: sqlite or pgx
//	-d string   store data source name
//	-s string   session record file path
//	-o string   documents root directory
//	-l string   log format: text or json
//
// # JSON schema
//
//	{
//	  "store_driver": "sqlite",
//	  "store_dsn": "shelterdesk.db",
//	  "session_file": "session.txt",
//	  "documents_dir": "adoption_requests",
//	  "log_format": "text"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
