// Package logger provides structured logging for sfsession.
package logger

import (
	"log/slog"
	"strings"
)

// Salesforce session tokens carry the issuing org ID, a bang, then the
// opaque secret part: 00Dxx0000001gEr!AQ4AQFh...
const (
	sessionTokenOrgPrefix = "00D"
	sessionTokenSeparator = "!"
)

// Sensitive key patterns that should be redacted.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"token",
	"credential",
	"auth",
	"bearer",
	"signature",
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactSensitive checks if an attribute contains sensitive data
// and redacts it if necessary.
func redactSensitive(a slog.Attr) slog.Attr {
	// A value shaped like a session token gets a partial mask, which
	// takes priority over key-based detection so operators can still
	// correlate tokens across log lines.
	if a.Value.Kind() == slog.KindString {
		strVal := a.Value.String()
		if IsSessionToken(strVal) {
			return slog.String(a.Key, maskToken(strVal))
		}

		// If key name suggests sensitive data and value is non-empty, fully redact
		keyLower := strings.ToLower(a.Key)
		for _, pattern := range sensitiveKeyPatterns {
			if strings.Contains(keyLower, pattern) {
				if strVal != "" {
					return slog.String(a.Key, redactedValue)
				}
				break
			}
		}
	}

	// Handle nested groups recursively
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// maskToken partially masks a session token, keeping the org part and
// hints at the ends of the secret part.
// Format: orgID + "!" + first 3 chars + "..." + last 3 chars
func maskToken(value string) string {
	idx := strings.Index(value, sessionTokenSeparator)
	if idx < 0 {
		return redactedValue
	}

	prefix := value[:idx+1]
	body := value[idx+1:]
	if len(body) > 6 {
		return prefix + body[:3] + "..." + body[len(body)-3:]
	}
	return prefix + "***"
}

// RedactString manually redacts a string value.
// Use this when you need to redact a value before logging.
func RedactString(value string) string {
	if IsSessionToken(value) {
		return maskToken(value)
	}
	return value
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}

// IsSessionToken checks if a value is shaped like a Salesforce session token.
func IsSessionToken(value string) bool {
	return strings.HasPrefix(value, sessionTokenOrgPrefix) &&
		strings.Contains(value, sessionTokenSeparator)
}
