// Package oauth defines the Salesforce OAuth2 wire protocol: the endpoint
// paths and the JSON payloads exchanged with the token and revoke endpoints.
//
// The package is a pure codec. It performs no IO; the session coordinator
// and the transport layer move the bytes, this package only gives them
// shape. Decode failures surface as the domain decode errors so callers can
// tell a malformed body apart from a rejected login.
package oauth
