// Package oauth defines the Salesforce OAuth2 wire protocol.
package oauth

import (
	"encoding/json"

	"github.com/averlon/sfsession-go/internal/core/domain"
)

// OAuth2 endpoint paths, relative to the login or instance base URL.
const (
	// TokenPath is the resource-owner password grant endpoint.
	TokenPath = "/services/oauth2/token"

	// RevokePath is the token revocation endpoint; the token rides in the
	// query string.
	RevokePath = "/services/oauth2/revoke?token="
)

// LoginError is the error payload the token endpoint returns with HTTP 400.
type LoginError struct {
	// ErrorCode is the OAuth2 error code (e.g., "invalid_grant").
	ErrorCode string `json:"error"`

	// ErrorDescription is the human-readable description.
	ErrorDescription string `json:"error_description"`
}

// DecodeToken parses a successful (HTTP 200) token response body into a
// Credential. Fails with ErrDecodeToken on malformed input.
func DecodeToken(body []byte) (domain.Credential, error) {
	var cred domain.Credential
	if err := json.Unmarshal(body, &cred); err != nil {
		return domain.Credential{}, domain.ErrDecodeToken.WithCause(err)
	}
	if cred.AccessToken == "" || cred.InstanceURL == "" {
		return domain.Credential{}, domain.ErrDecodeToken.WithDetails(
			"response is missing access_token or instance_url")
	}
	return cred, nil
}

// DecodeLoginError parses an HTTP 400 error response body.
// Fails with ErrDecodeLoginError on malformed input.
func DecodeLoginError(body []byte) (*LoginError, error) {
	var le LoginError
	if err := json.Unmarshal(body, &le); err != nil {
		return nil, domain.ErrDecodeLoginError.WithCause(err)
	}
	return &le, nil
}
