// Package config loads runtime configuration for the sharefile client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// The result is validated with go-playground/validator before it is
// returned.
//
// # JSON schema
//
// Durations are strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_url": "https://share.example.com",
//	  "session_cookie_name": "access_token",
//	  "session_token": "eyJ...",
//	  "max_file_size": 524288000,
//	  "expires_in_days": 7,
//	  "concurrency": 1,
//	  "checksum_mode": "prefix",
//	  "http_timeout": "30s",
//	  "online_check_interval": "3s",
//	  "history_dsn": "~/.sharefile/history.db",
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
//
// Environment variables are not read.
package config
