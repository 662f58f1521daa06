// Package command provides CLI command definitions for sfsession-cli.
package command

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/averlon/sfsession-go/internal/infra/buildinfo"
	"github.com/averlon/sfsession-go/internal/infra/confloader"
	"github.com/averlon/sfsession-go/internal/infra/shutdown"
	"github.com/averlon/sfsession-go/internal/server/localserver"
	"github.com/averlon/sfsession-go/internal/telemetry/logger"
	"github.com/averlon/sfsession-go/internal/telemetry/metric"
)

// DaemonCommand returns the daemon command.
//
// The daemon logs in at startup, holds the session for the lifetime of
// the process, and revokes the credential on SIGINT/SIGTERM. With
// metrics enabled it exposes a Prometheus endpoint; with a socket path
// given it serves the credential to local processes; with a config file
// given it watches the file and applies log-level changes live.
func DaemonCommand() *cli.Command {
	return &cli.Command{
		Name:  "daemon",
		Usage: "Hold an authenticated session until terminated",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "Expose a Prometheus /metrics endpoint",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Metrics listen address (overrides metrics.addr)",
			},
			&cli.StringFlag{
				Name:  "socket",
				Usage: "Unix socket path for serving the credential to local processes",
			},
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Value: 30 * time.Second,
				Usage: "Grace period for cleanup on shutdown",
			},
		},
		Action: runDaemon,
	}
}

func runDaemon(c *cli.Context) error {
	cfg, err := LoadConfig(c)
	if err != nil {
		return err
	}
	log, err := InitLogger(cfg)
	if err != nil {
		return err
	}

	log.Info("starting sfsession daemon",
		"version", buildinfo.Version,
		"login_url", cfg.Auth.LoginURL,
		"username", cfg.Auth.Username,
	)

	var metrics *metric.Registry
	if cfg.Metrics.Enabled || c.Bool("metrics") {
		metrics = metric.NewRegistry()
		if err := metrics.Register(metric.NewBuildInfoCollector(buildinfo.Version, buildinfo.Commit)); err != nil {
			return err
		}
	}

	coord, err := BuildCoordinator(cfg, log, metrics)
	if err != nil {
		return err
	}

	if err := coord.Start(c.Context); err != nil {
		return err
	}

	sd := shutdown.NewHandler(c.Duration("shutdown-timeout"))

	// Registered first so it runs last, after the metrics endpoint and
	// watcher are already down.
	sd.OnShutdown(func(ctx context.Context) error {
		log.Info("revoking session credential")
		return coord.Stop(ctx)
	})

	if metrics != nil {
		addr := cfg.Metrics.Addr
		if c.IsSet("metrics-addr") {
			addr = c.String("metrics-addr")
		}

		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		srv := &http.Server{Addr: addr, Handler: mux}

		sd.OnShutdown(func(ctx context.Context) error {
			log.Info("shutting down metrics endpoint")
			return srv.Shutdown(ctx)
		})

		go func() {
			log.Info("metrics endpoint listening", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics endpoint error", "error", err)
			}
		}()
	}

	if socket := c.String("socket"); socket != "" {
		local := localserver.New(socket, coord, localserver.WithLogger(log))

		sd.OnShutdown(func(ctx context.Context) error {
			log.Info("shutting down local credential server")
			return local.Shutdown(ctx)
		})

		go func() {
			if err := local.ListenAndServe(); err != nil {
				log.Error("local credential server error", "error", err)
				sd.Trigger()
			}
		}()
	}

	if path := c.String("config"); path != "" {
		if err := watchConfig(c, path, log, sd); err != nil {
			return err
		}
	}

	log.Info("daemon started",
		"instance_url", coord.Credential().InstanceURL,
	)

	return sd.Wait()
}

// watchConfig applies configuration file changes to the running daemon.
// Only the log level takes effect live; credential changes apply on the
// next restart, since the session configuration is immutable once the
// coordinator is constructed.
func watchConfig(c *cli.Context, path string, log logger.Logger, sd *shutdown.Handler) error {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(slog.Default()))
	if err != nil {
		return err
	}
	if err := watcher.Watch(path); err != nil {
		return err
	}

	watcher.OnChange(func(changed string) {
		if filepath.Base(changed) != filepath.Base(path) {
			return
		}
		fresh, err := LoadConfig(c)
		if err != nil {
			log.Warn("ignoring invalid configuration change", "file", changed, "error", err)
			return
		}
		logger.SetLevel(fresh.Log.Level)
		log.Info("configuration reloaded, credential changes apply on restart",
			"file", changed,
			"log_level", fresh.Log.Level,
		)
	})

	watcher.StartAsync()
	sd.OnShutdown(func(ctx context.Context) error {
		return watcher.Stop()
	})
	return nil
}
