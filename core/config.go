package core

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	defaultAccountBaseURL = "https://account.scooter-cloud.com"
	defaultAPIBaseURL     = "https://app-api.scooter-cloud.com"
	defaultLocale         = "en-US"
	defaultUserAgent      = "go-scooter"
	defaultRequestTimeout = 30 * time.Second
)

type Config struct {
	// AccountBaseURL hosts the login endpoint; APIBaseURL hosts everything else.
	AccountBaseURL string `koanf:"account_base_url" mapstructure:"account_base_url"`
	APIBaseURL     string `koanf:"api_base_url" mapstructure:"api_base_url"`

	// Locale is sent as Accept-Language on every request.
	Locale    string `koanf:"locale" mapstructure:"locale"`
	UserAgent string `koanf:"user_agent" mapstructure:"user_agent"`

	Timeout              time.Duration `koanf:"timeout" mapstructure:"timeout"`
	MaxResponseBodyBytes int64         `koanf:"max_response_body_bytes" mapstructure:"max_response_body_bytes"`
}

func DefaultConfig() Config {
	return Config{
		AccountBaseURL: defaultAccountBaseURL,
		APIBaseURL:     defaultAPIBaseURL,
		Locale:         defaultLocale,
		UserAgent:      defaultUserAgent,
		Timeout:        defaultRequestTimeout,
	}
}

func (c Config) Validate() error {
	if err := validateBaseURL("account_base_url", c.AccountBaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("api_base_url", c.APIBaseURL); err != nil {
		return err
	}
	if strings.TrimSpace(c.Locale) == "" {
		return fmt.Errorf("core: locale is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("core: timeout must not be negative")
	}
	if c.MaxResponseBodyBytes < 0 {
		return fmt.Errorf("core: max_response_body_bytes must not be negative")
	}
	return nil
}

func validateBaseURL(name string, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fmt.Errorf("core: %s is required", name)
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("core: parse %s: %w", name, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("core: %s must be an absolute URL", name)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("core: %s scheme must be http or https, got %q", name, parsed.Scheme)
	}
	return nil
}
