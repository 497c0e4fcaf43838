package config

import (
	"flag"
	"os"
	"time"

	"github.com/nsavkin/paperdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the PaperDesk backend (default from Config)
//	-t string   access token (default from Config)
//	-m string   default assistant model (default from Config)
//	-i int      request timeout in seconds (default from Config)
//	-d string   downloads directory (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-m", "-i", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the PaperDesk backend")
	fs.StringVar(&cfg.Token, "t", cfg.Token, "access token")
	fs.StringVar(&cfg.Model, "m", cfg.Model, "default assistant model")
	fs.StringVar(&cfg.DownloadsDir, "d", cfg.DownloadsDir, "downloads directory")
	requestTimeout := fs.Int("i", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
