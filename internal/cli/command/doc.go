// Package command provides CLI command definitions for sfsession-cli.
//
// Commands:
//
//   - login: authenticate and print the credential
//   - logout: revoke a caller-supplied token
//   - whoami: full login/logout cycle as a credential check
//   - daemon: hold a session for the process lifetime, with optional
//     Prometheus metrics and live log-level reload
//   - version: build information
//
// Configuration resolution order, lowest to highest priority: built-in
// defaults, YAML file (--config), SFSESSION_* environment variables,
// command-line flags.
package command
