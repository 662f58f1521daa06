// Package tlsroots builds the certificate trust used for HTTPS calls to
// Salesforce.
//
// By default the system trust store is used. Deployments that reach
// Salesforce through a corporate TLS-intercepting proxy, or that pin a
// private CA, can extend the pool with additional PEM certificates from
// a file or directory and hand the resulting tls.Config to the HTTP
// transport.
package tlsroots
