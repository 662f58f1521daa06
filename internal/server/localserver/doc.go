// Package localserver exposes the daemon's session state over a Unix
// domain socket.
//
// Local processes read the current credential from the socket instead of
// performing their own OAuth2 logins, so a host runs one login flow no
// matter how many consumers it has:
//
//   - GET /credential: the active credential as JSON, 404 while no
//     session is established
//   - GET /health: liveness probe
//
// Security: the socket file is created with mode 0600, so only the
// daemon's user can read the credential. No network listener is opened.
package localserver
