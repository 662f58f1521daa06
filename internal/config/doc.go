// Package config defines the configuration surface for sfsession.
//
// The structure is koanf-tagged and loaded through internal/infra/confloader
// with the usual precedence: flags over environment over file over defaults.
// Verify enforces the required credential fields eagerly at startup;
// Normalize canonicalizes loaded values; Sanitize produces a copy safe to
// log.
package config
