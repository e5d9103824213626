package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/sharefile/internal/client/auth"
	"github.com/dmitrijs2005/sharefile/internal/client/transfer"
)

// Config holds runtime settings for the sharefile client.
//
// Durations are time.Duration values; JSON accepts "30s" style strings,
// flags take whole seconds. Recipients and Message are only settable from
// flags and prefill the one-shot transfer.
type Config struct {
	ServerURL           string        `validate:"required,http_url"`
	SessionCookieName   string        `validate:"required"`
	SessionToken        string        `validate:"omitempty,jwt"`
	MaxFileSize         int64         `validate:"gt=0"`
	ExpiresInDays       int           `validate:"min=1,max=30"`
	Concurrency         int           `validate:"min=1,max=32"`
	ChecksumMode        string        `validate:"oneof=prefix blake2b"`
	HTTPTimeout         time.Duration `validate:"gte=0"`
	OnlineCheckInterval time.Duration `validate:"gt=0"`
	HistoryDSN          string
	LogLevel            string `validate:"oneof=debug info warn error"`
	LogFormat           string `validate:"oneof=text json"`

	Recipients []string
	Message    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.SessionCookieName = auth.DefaultCookieName
	c.MaxFileSize = transfer.MaxFileSize
	c.ExpiresInDays = transfer.DefaultExpiresInDays
	c.Concurrency = 1
	c.ChecksumMode = transfer.ChecksumModePrefix
	c.HTTPTimeout = 30 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.HistoryDSN = "~/.sharefile/history.db"
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Load builds a Config from args (without the program name): defaults, then
// the JSON file named by -c/-config, then flags. Later sources take
// precedence. The remaining positional arguments are returned as files.
func Load(args []string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, nil, err
	}

	files, err := parseFlags(cfg, args)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, files, nil
}

// LoadConfig is Load over os.Args.
func LoadConfig() (*Config, []string, error) {
	return Load(os.Args[1:])
}
