// Package config defines the sfsession configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultLoginURL = "https://login.salesforce.com"
	DefaultTimeout  = 60 * time.Second

	DefaultMetricsAddr = "127.0.0.1:9134"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default configuration.
// Credential fields have no defaults; Verify rejects a config that never
// filled them in.
func Default() *Config {
	return &Config{
		Auth: AuthSection{
			LoginURL: DefaultLoginURL,
			Timeout:  DefaultTimeout,
		},
		Metrics: MetricsSection{
			Enabled: false,
			Addr:    DefaultMetricsAddr,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
