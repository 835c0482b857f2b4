package config

// Config holds runtime settings for the ShelterDesk application.
//
// Fields:
//   - StoreDriver: database driver, "sqlite" or "pgx".
//   - StoreDSN: data source name for the chosen driver.
//   - SessionFile: path of the persisted session record.
//   - DocumentsDir: root directory for rendered adoption request documents.
//   - LogFormat: "text" or "json".
type Config struct {
	StoreDriver  string
	StoreDSN     string
	SessionFile  string
	DocumentsDir string
	LogFormat    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreDriver = "sqlite"
	c.StoreDSN = "shelterdesk.db"
	c.SessionFile = "session.txt"
	c.DocumentsDir = "adoption_requests"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
