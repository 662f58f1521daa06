// Package config defines the sfsession configuration structure.
package config

import "time"

// Config is the root configuration for sfsession.
type Config struct {
	Auth    AuthSection    `koanf:"auth"`
	HTTP    HTTPSection    `koanf:"http"`
	Metrics MetricsSection `koanf:"metrics"`
	Log     LogSection     `koanf:"log"`
}

// AuthSection configures the OAuth2 resource-owner password grant.
//
// All credential fields are required and validated by Verify before any
// network call is attempted; a missing field is a configuration error,
// never a deferred request-time failure.
type AuthSection struct {
	// LoginURL is the generic login host. Re-logins prefer the
	// org-specific instance URL once a login has returned one.
	LoginURL string `koanf:"login_url"`

	// ClientID is the connected app consumer key.
	ClientID string `koanf:"client_id"`

	// ClientSecret is the connected app consumer secret.
	ClientSecret string `koanf:"client_secret"`

	// Username is the resource owner's username.
	Username string `koanf:"username"`

	// Password is the resource owner's password, with the security token
	// appended when the org requires one.
	Password string `koanf:"password"`

	// Timeout bounds each login/logout HTTP request.
	Timeout time.Duration `koanf:"timeout"`
}

// HTTPSection configures transport behavior.
type HTTPSection struct {
	UserAgent string `koanf:"user_agent"`

	// CAFile adds a PEM bundle to the trusted roots, for deployments
	// that reach Salesforce through a TLS-intercepting proxy.
	CAFile string `koanf:"ca_file"`

	// CADir adds every .pem/.crt/.cer file in a directory to the
	// trusted roots.
	CADir string `koanf:"ca_dir"`
}

// MetricsSection configures the Prometheus endpoint of the daemon.
type MetricsSection struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
