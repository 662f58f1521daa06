// Package command provides CLI command definitions for sfsession-cli.
//
// It uses urfave/cli/v2 for command parsing. Configuration comes from
// defaults, an optional YAML file, SFSESSION_* environment variables,
// and explicit command-line flags, in rising priority.
package command

import (
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/averlon/sfsession-go/internal/config"
	"github.com/averlon/sfsession-go/internal/core/session"
	"github.com/averlon/sfsession-go/internal/infra/buildinfo"
	"github.com/averlon/sfsession-go/internal/infra/confloader"
	"github.com/averlon/sfsession-go/internal/infra/tlsroots"
	"github.com/averlon/sfsession-go/internal/telemetry/logger"
	"github.com/averlon/sfsession-go/internal/telemetry/metric"
	"github.com/averlon/sfsession-go/internal/transport"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "sfsession-cli",
		Usage:   "Salesforce OAuth2 session management tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			LoginCommand(),
			LogoutCommand(),
			WhoAmICommand(),
			DaemonCommand(),
			VersionCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
//
// Credential flags carry no EnvVars on purpose: the SFSESSION_AUTH_*
// environment variables are read by the configuration loader, and
// flags only participate when given explicitly on the command line.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to YAML configuration file",
			EnvVars: []string{"SFSESSION_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "login-url",
			Usage: "Salesforce login host (e.g., https://test.salesforce.com)",
		},
		&cli.StringFlag{
			Name:  "client-id",
			Usage: "Connected app consumer key",
		},
		&cli.StringFlag{
			Name:  "client-secret",
			Usage: "Connected app consumer secret",
		},
		&cli.StringFlag{
			Name:    "username",
			Aliases: []string{"u"},
			Usage:   "Salesforce username",
		},
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "Salesforce password (with security token appended if required)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Per-request timeout (e.g., 60s)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: json, text",
		},
	}
}

// flagOverrides maps command-line flags to configuration keys.
var flagOverrides = map[string]string{
	"login-url":     "auth.login_url",
	"client-id":     "auth.client_id",
	"client-secret": "auth.client_secret",
	"username":      "auth.username",
	"password":      "auth.password",
	"log-level":     "log.level",
	"log-format":    "log.format",
}

// LoadConfig builds and verifies the effective configuration.
func LoadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := loadRawConfig(c)
	if err != nil {
		return nil, err
	}
	if err := config.Verify(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadRawConfig loads and normalizes the configuration without
// verifying it. Commands that only need a subset of the fields (logout
// revokes a caller-supplied token) use this directly.
func loadRawConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if path := c.String("config"); path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	overrides := map[string]any{}
	for flagName, key := range flagOverrides {
		if c.IsSet(flagName) {
			overrides[key] = c.String(flagName)
		}
	}
	if c.IsSet("timeout") {
		overrides["auth.timeout"] = c.Duration("timeout")
	}
	if len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, err
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	config.Normalize(cfg)
	return cfg, nil
}

// InitLogger creates the process logger from configuration and installs
// it as the default.
func InitLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, err
	}
	logger.SetDefault(log)
	return log, nil
}

// newTransport builds the HTTP client from configuration.
func newTransport(cfg *config.Config) (*transport.HTTPClient, error) {
	opts := []transport.Option{transport.WithTimeout(cfg.Auth.Timeout)}
	if cfg.HTTP.UserAgent != "" {
		opts = append(opts, transport.WithUserAgent(cfg.HTTP.UserAgent))
	}

	if cfg.HTTP.CAFile != "" || cfg.HTTP.CADir != "" {
		pool, err := tlsroots.NewPool()
		if err != nil {
			return nil, err
		}
		if cfg.HTTP.CAFile != "" {
			if err := pool.AddCertFile(cfg.HTTP.CAFile); err != nil {
				return nil, err
			}
		}
		if cfg.HTTP.CADir != "" {
			if err := pool.AddCertDir(cfg.HTTP.CADir); err != nil {
				return nil, err
			}
		}
		opts = append(opts, transport.WithHTTPClient(&http.Client{
			Timeout: cfg.Auth.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: pool.TLSConfig(),
			},
		}))
	}

	return transport.New(opts...), nil
}

// BuildCoordinator wires a session coordinator from configuration.
// metrics may be nil.
func BuildCoordinator(cfg *config.Config, log logger.Logger, metrics *metric.Registry) (*session.Coordinator, error) {
	client, err := newTransport(cfg)
	if err != nil {
		return nil, err
	}
	return session.NewCoordinator(cfg.Auth, client,
		session.WithLogger(log),
		session.WithMetrics(metrics),
	)
}
