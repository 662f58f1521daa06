// Package domain defines the core domain models for sfsession.
package domain

// Credential is an authenticated Salesforce context: the OAuth2 bearer
// token together with the org-specific instance URL the token is valid
// against.
//
// AccessToken and InstanceURL are always set together by a successful login
// and cleared together on logout or login failure; a Credential never
// carries one without the other.
type Credential struct {
	// AccessToken is the opaque bearer token.
	AccessToken string `json:"access_token"`

	// InstanceURL is the org-specific API base URL returned with the token.
	InstanceURL string `json:"instance_url"`

	// ID is the identity URL of the authenticated user.
	ID string `json:"id"`

	// TokenType is the token usage hint, "Bearer" for this grant.
	TokenType string `json:"token_type"`

	// IssuedAt is the server-side issue timestamp (epoch milliseconds,
	// as a decimal string on the wire).
	IssuedAt string `json:"issued_at"`

	// Signature is the HMAC over id+issued_at, signed with the consumer
	// secret. Callers that care can verify it; the coordinator does not.
	Signature string `json:"signature"`
}

// IsZero reports whether the credential is empty (unauthenticated).
func (c Credential) IsZero() bool {
	return c.AccessToken == ""
}

// Matches reports whether the other credential carries the same access
// token. Only the token participates in staleness comparison; the other
// fields ride along with it.
func (c Credential) Matches(other Credential) bool {
	return c.AccessToken == other.AccessToken
}
