// Package shutdown provides graceful shutdown for the sfsession daemon.
//
// This package handles process termination:
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Programmatic triggering for tests and internal shutdown paths
//   - Timeout-bounded cleanup
//   - Cleanup hook registration in reverse-dependency order
//
// The daemon uses it to guarantee the Salesforce credential is revoked
// on exit: the session coordinator's Stop runs as the final hook.
package shutdown
