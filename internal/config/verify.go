// Package config defines the sfsession configuration structure.
package config

import (
	"strings"

	"github.com/averlon/sfsession-go/internal/core/domain"
)

// Verify validates the configuration.
//
// Every credential field is required; validation happens here, eagerly,
// so a broken deployment fails at startup instead of on the first login.
func Verify(cfg *Config) error {
	return VerifyAuth(cfg.Auth)
}

// VerifyAuth validates the authentication section on its own, for
// callers constructed from an AuthSection rather than a full Config.
func VerifyAuth(auth AuthSection) error {
	required := []struct {
		key   string
		value string
	}{
		{"auth.login_url", auth.LoginURL},
		{"auth.client_id", auth.ClientID},
		{"auth.client_secret", auth.ClientSecret},
		{"auth.username", auth.Username},
		{"auth.password", auth.Password},
	}

	for _, field := range required {
		if field.value == "" {
			return domain.ErrConfigMissing.WithDetails(field.key)
		}
	}

	if auth.Timeout <= 0 {
		return domain.ErrConfigInvalid.WithDetails("auth.timeout must be positive")
	}
	if !strings.HasPrefix(auth.LoginURL, "http://") && !strings.HasPrefix(auth.LoginURL, "https://") {
		return domain.ErrConfigInvalid.WithDetails("auth.login_url must be an http(s) URL")
	}

	return nil
}

// Normalize adjusts loaded values into canonical form.
// The login URL loses its trailing slash so path concatenation never
// produces a double slash.
func Normalize(cfg *Config) {
	cfg.Auth.LoginURL = strings.TrimRight(cfg.Auth.LoginURL, "/")
	if cfg.Auth.Timeout == 0 {
		cfg.Auth.Timeout = DefaultTimeout
	}
}
