package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sharefile/internal/flagx"
	"github.com/dmitrijs2005/sharefile/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so they may be strings like "3s" or integer nanoseconds.
// Zero values leave the corresponding Config field untouched.
type JsonConfig struct {
	ServerURL           string         `json:"server_url"`
	SessionCookieName   string         `json:"session_cookie_name"`
	SessionToken        string         `json:"session_token"`
	MaxFileSize         int64          `json:"max_file_size"`
	ExpiresInDays       int            `json:"expires_in_days"`
	Concurrency         int            `json:"concurrency"`
	ChecksumMode        string         `json:"checksum_mode"`
	HTTPTimeout         timex.Duration `json:"http_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	HistoryDSN          string         `json:"history_dsn"`
	LogLevel            string         `json:"log_level"`
	LogFormat           string         `json:"log_format"`
}

// parseJson overlays cfg with the JSON file given by -c or -config in args.
// Without either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.ServerURL, jc.ServerURL)
	setString(&cfg.SessionCookieName, jc.SessionCookieName)
	setString(&cfg.SessionToken, jc.SessionToken)
	setString(&cfg.ChecksumMode, jc.ChecksumMode)
	setString(&cfg.HistoryDSN, jc.HistoryDSN)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)

	if jc.MaxFileSize != 0 {
		cfg.MaxFileSize = jc.MaxFileSize
	}
	if jc.ExpiresInDays != 0 {
		cfg.ExpiresInDays = jc.ExpiresInDays
	}
	if jc.Concurrency != 0 {
		cfg.Concurrency = jc.Concurrency
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
