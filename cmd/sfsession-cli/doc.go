// Package main provides the entry point for sfsession-cli.
//
// sfsession-cli manages Salesforce OAuth2 sessions obtained via the
// resource-owner password grant:
//
//   - One-shot authentication (login, whoami)
//   - Token revocation (logout)
//   - A long-running daemon that holds a session for the process
//     lifetime and revokes it on shutdown
//
// Usage:
//
//	sfsession-cli --config config.yaml login
//	sfsession-cli --config config.yaml daemon --metrics
//	sfsession-cli logout --token <access token>
//
// Credentials can come from a YAML file, SFSESSION_* environment
// variables, or command-line flags.
package main
