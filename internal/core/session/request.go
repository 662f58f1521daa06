// Package session implements the Salesforce session coordinator.
package session

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/averlon/sfsession-go/internal/config"
	"github.com/averlon/sfsession-go/internal/core/domain"
	"github.com/averlon/sfsession-go/internal/oauth"
)

// loginBase returns the base URL for token-endpoint requests. Once a
// login has returned an org-specific instance URL, subsequent exchanges
// target it instead of the generic login host.
func loginBase(auth config.AuthSection, instanceURL string) string {
	if instanceURL != "" {
		return strings.TrimRight(instanceURL, "/")
	}
	return strings.TrimRight(auth.LoginURL, "/")
}

// BuildLoginRequest builds the OAuth2 resource-owner password grant
// request. It is exposed as a standalone capability so an
// authentication-retrying transport can bind an equivalent request to
// its own HTTP conversation.
func BuildLoginRequest(ctx context.Context, auth config.AuthSection, instanceURL string) (*http.Request, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("client_id", auth.ClientID)
	form.Set("client_secret", auth.ClientSecret)
	form.Set("username", auth.Username)
	form.Set("password", auth.Password)
	form.Set("format", "json")

	endpoint := loginBase(auth, instanceURL) + oauth.TokenPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, domain.ErrConfigInvalid.
			WithDetails("auth.login_url: " + endpoint).
			WithCause(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

// BuildRevokeRequest builds the token revocation request. The token
// rides in the query string, so it is escaped here.
func BuildRevokeRequest(ctx context.Context, base, accessToken string) (*http.Request, error) {
	endpoint := strings.TrimRight(base, "/") + oauth.RevokePath + url.QueryEscape(accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.ErrConfigInvalid.
			WithDetails("revoke endpoint: " + endpoint).
			WithCause(err)
	}
	return req, nil
}
