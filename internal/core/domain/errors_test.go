package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAuthError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AuthError
		want string
	}{
		{
			name: "without details",
			err:  NewAuthError("SF-TEST-0001", "something failed"),
			want: "[SF-TEST-0001] something failed",
		},
		{
			name: "with details",
			err:  NewAuthError("SF-TEST-0001", "something failed").WithDetails("because reasons"),
			want: "[SF-TEST-0001] something failed: because reasons",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthError_Is(t *testing.T) {
	err := ErrLoginRejected.WithDetails("code:[invalid_grant]").WithStatus(400)

	if !errors.Is(err, ErrLoginRejected) {
		t.Error("decorated error should match its sentinel by code")
	}
	if errors.Is(err, ErrLoginStatus) {
		t.Error("error should not match a sentinel with a different code")
	}
	if errors.Is(err, errors.New("plain")) {
		t.Error("AuthError should not match a plain error")
	}
}

func TestAuthError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := ErrTransportFailure.WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
}

func TestAuthError_WithStatus(t *testing.T) {
	base := ErrLoginStatus
	err := base.WithStatus(503)

	if err.Status != 503 {
		t.Errorf("Status = %d, want 503", err.Status)
	}
	if base.Status != 0 {
		t.Error("WithStatus must not mutate the sentinel")
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(ErrLoginRejected.WithStatus(400)); got != 400 {
		t.Errorf("StatusOf() = %d, want 400", got)
	}
	if got := StatusOf(errors.New("plain")); got != 0 {
		t.Errorf("StatusOf(plain) = %d, want 0", got)
	}
	if got := StatusOf(fmt.Errorf("wrapped: %w", ErrLogoutStatus.WithStatus(500))); got != 500 {
		t.Errorf("StatusOf(wrapped) = %d, want 500", got)
	}
}

func TestSentinelCodesAreUnique(t *testing.T) {
	sentinels := []*AuthError{
		ErrConfigMissing,
		ErrConfigInvalid,
		ErrRequestInterrupted,
		ErrRequestTimeout,
		ErrTransportFailure,
		ErrLoginRejected,
		ErrLoginStatus,
		ErrLogoutStatus,
		ErrDecodeToken,
		ErrDecodeLoginError,
	}

	seen := make(map[string]string)
	for _, s := range sentinels {
		if prev, dup := seen[s.Code]; dup {
			t.Errorf("code %s reused by %q and %q", s.Code, prev, s.Message)
		}
		seen[s.Code] = s.Message
		if !strings.HasPrefix(s.Code, "SF-") {
			t.Errorf("code %s should carry the SF- prefix", s.Code)
		}
	}
}
