// Package transport provides the HTTP client used by the session
// coordinator.
//
// The coordinator only sees the narrow Client interface: one Send call
// that returns status, reason phrase, and the drained body. Connection
// pooling, TLS, and redirects stay inside net/http; this package's only
// jobs are applying the per-request timeout and translating transport
// failures into the three typed causes the domain distinguishes
// (interrupted, timeout, execution failure).
package transport
