// Package session implements the Salesforce session coordinator.
//
// The Coordinator owns the process-wide OAuth2 credential obtained via
// the resource-owner password grant and serializes every login/logout
// transition:
//
//   - coordinator.go: credential ownership, stale-token fencing,
//     login/logout orchestration, lifecycle hooks
//   - request.go: OAuth2 request shaping (standalone)
//   - classify.go: token-endpoint response classification (standalone)
//   - listener.go: observer fanout with panic isolation
//   - authtransport.go: bearer-injecting http.RoundTripper with a
//     single fenced re-login on 401
//
// The fencing rule is the heart of the package: a caller asking to
// re-login presents the credential it believes is current, and the
// exchange only happens when that belief still matches the held state.
// Callers racing on the same stale token converge on one winner's
// result, so the token endpoint sees at most one login per invalidated
// token no matter how many goroutines noticed the staleness.
package session
