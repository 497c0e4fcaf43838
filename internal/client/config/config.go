package config

import "time"

// Config holds runtime settings for the PaperDesk CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST endpoint.
//   - Token: access token presented as a bearer credential.
//   - Model: assistant model selected for new messages.
//   - RequestTimeout: per-request deadline for backend calls.
//   - DownloadsDir: directory (relative to the working dir) where
//     downloaded attachments are written.
type Config struct {
	ServerBaseURL  string        `env:"SERVER_URL"`
	Token          string        `env:"TOKEN"`
	Model          string        `env:"MODEL"`
	DownloadsDir   string        `env:"DOWNLOADS_DIR"`
	RequestTimeout time.Duration `env:"TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.Model = "gemini"
	c.DownloadsDir = "downloads"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
