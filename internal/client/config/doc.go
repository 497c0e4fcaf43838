// Package config loads runtime configuration for the PaperDesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables (see parseEnv), prefix PAPERDESK_.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the PaperDesk backend
//	-t string   access token
//	-m string   default assistant model
//	-i int      request timeout (seconds)
//	-d string   directory for downloaded attachments
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "request_timeout": "30s",
//	  "model": "gemini",
//	  "downloads_dir": "downloads"
//	}
//
// Primary API
//
//   - type Config: runtime settings for the CLI
//   - func LoadConfig() *Config: defaults, then env, JSON and flags
//   - func (*Config) LoadDefaults(): sets sensible defaults
package config
