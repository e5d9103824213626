package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/sharefile/internal/flagx"
)

// parseFlags overlays cfg with command-line flags and returns the positional
// arguments. Flags must come before the files.
//
//	-a string   server base URL
//	-s string   session token
//	-e int      transfer expiry in days
//	-j int      files uploaded in parallel
//	-k string   checksum mode: prefix or blake2b
//	-t int      HTTP timeout (seconds)
//	-i int      online check interval (seconds)
//	-d string   history database DSN, empty disables history
//	-l string   log level
//	-r string   recipient, repeatable
//	-m string   message
//	-c, -config path to the JSON config (read by parseJson)
func parseFlags(cfg *Config, args []string) ([]string, error) {
	fs := flag.NewFlagSet("sharefile", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var ignored string
	fs.StringVar(&ignored, "c", "", "path to config file (short)")
	fs.StringVar(&ignored, "config", "", "path to config file")

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "server base URL")
	fs.StringVar(&cfg.SessionToken, "s", cfg.SessionToken, "session token")
	fs.IntVar(&cfg.ExpiresInDays, "e", cfg.ExpiresInDays, "transfer expiry in days")
	fs.IntVar(&cfg.Concurrency, "j", cfg.Concurrency, "number of files uploaded in parallel")
	fs.StringVar(&cfg.ChecksumMode, "k", cfg.ChecksumMode, "checksum mode: prefix or blake2b")
	httpTimeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.HistoryDSN, "d", cfg.HistoryDSN, "history database DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	var recipients flagx.StringList
	fs.Var(&recipients, "r", "recipient email (repeatable)")
	fs.StringVar(&cfg.Message, "m", cfg.Message, "message for recipients")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.HTTPTimeout = time.Duration(*httpTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	if len(recipients) > 0 {
		cfg.Recipients = append(cfg.Recipients, recipients...)
	}

	return fs.Args(), nil
}
