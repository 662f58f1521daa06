// Package session implements the Salesforce session coordinator.
package session

import (
	"net/http"
)

// RoundTripper is an http.RoundTripper that injects the current bearer
// token into outgoing API requests and transparently re-authenticates
// once when the server answers 401.
//
// The retry presents the token it just used to Login, so fencing decides
// whether a real re-login happens: when several requests hit 401 on the
// same stale token, one of them refreshes and the rest reuse the result.
type RoundTripper struct {
	coordinator *Coordinator
	next        http.RoundTripper
}

// NewRoundTripper wraps next with bearer-token injection and a single
// 401-triggered re-login. A nil next means http.DefaultTransport.
func NewRoundTripper(c *Coordinator, next http.RoundTripper) *RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &RoundTripper{
		coordinator: c,
		next:        next,
	}
}

// RoundTrip implements http.RoundTripper.
func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	cred := rt.coordinator.Credential()
	if cred.IsZero() {
		var err error
		cred, err = rt.coordinator.Login(req.Context(), cred)
		if err != nil {
			return nil, err
		}
	}

	out := req.Clone(req.Context())
	out.Header.Set("Authorization", "Bearer "+cred.AccessToken)

	resp, err := rt.next.RoundTrip(out)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// A body without GetBody cannot be replayed; hand the 401 back.
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}
	resp.Body.Close()

	fresh, err := rt.coordinator.Login(req.Context(), cred)
	if err != nil {
		return nil, err
	}

	retry := req.Clone(req.Context())
	retry.Header.Set("Authorization", "Bearer "+fresh.AccessToken)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}

	return rt.next.RoundTrip(retry)
}
