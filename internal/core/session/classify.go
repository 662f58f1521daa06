// Package session implements the Salesforce session coordinator.
package session

import (
	"fmt"
	"net/http"

	"github.com/averlon/sfsession-go/internal/core/domain"
	"github.com/averlon/sfsession-go/internal/oauth"
	"github.com/averlon/sfsession-go/internal/transport"
)

// ClassifyLoginResponse maps a token-endpoint HTTP response to exactly
// one outcome: a decoded credential, or a typed failure.
//
//   - 200: decode the token payload; a malformed body is a decode
//     failure, never silently treated as a bad login.
//   - 400: decode the OAuth error payload and surface its code and
//     description as a rejected login.
//   - anything else: surface the numeric status and reason phrase.
//
// Like BuildLoginRequest, this is standalone so a retrying transport can
// classify responses from its own exchanges.
func ClassifyLoginResponse(resp *transport.Response) (domain.Credential, error) {
	switch resp.Status {
	case http.StatusOK:
		return oauth.DecodeToken(resp.Body)

	case http.StatusBadRequest:
		le, err := oauth.DecodeLoginError(resp.Body)
		if err != nil {
			return domain.Credential{}, err
		}
		return domain.Credential{}, domain.ErrLoginRejected.
			WithStatus(http.StatusBadRequest).
			WithDetails(fmt.Sprintf("code:[%s] description:[%s]", le.ErrorCode, le.ErrorDescription))

	default:
		return domain.Credential{}, domain.ErrLoginStatus.
			WithStatus(resp.Status).
			WithDetails(fmt.Sprintf("status:[%d] reason:[%s]", resp.Status, resp.Reason))
	}
}
