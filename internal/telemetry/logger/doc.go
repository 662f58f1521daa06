// Package logger provides structured logging for sfsession.
//
// The package is organized as:
//
//   - logger.go: slog-based logger configuration and initialization
//   - context.go: Context-aware logging with exchange IDs
//   - redact.go: Credential and session token redaction
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering with runtime adjustment
//   - Automatic masking of passwords, secrets, and session tokens
//   - Context propagation so every exchange is traceable
package logger
