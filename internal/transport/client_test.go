package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/averlon/sfsession-go/internal/core/domain"
)

func TestSend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != defaultUserAgent {
			t.Errorf("User-Agent = %q, want %q", got, defaultUserAgent)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	c := New()
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	resp, err := c.Send(context.Background(), req)
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if resp.Status != http.StatusOK {
		t.Errorf("Status = %d, want 200", resp.Status)
	}
	if resp.Reason != "OK" {
		t.Errorf("Reason = %q, want OK", resp.Reason)
	}
	if string(resp.Body) != `{"ok":true}` {
		t.Errorf("Body = %q", resp.Body)
	}
}

func TestSend_ErrorStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := New()
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

	resp, err := c.Send(context.Background(), req)
	if err != nil {
		t.Fatalf("Send() error = %v, want nil for HTTP 503", err)
	}
	if resp.Status != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want 503", resp.Status)
	}
	if resp.Reason != "Service Unavailable" {
		t.Errorf("Reason = %q, want Service Unavailable", resp.Reason)
	}
}

func TestSend_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := New(WithTimeout(20 * time.Millisecond))
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

	_, err := c.Send(context.Background(), req)
	if !errors.Is(err, domain.ErrRequestTimeout) {
		t.Errorf("Send() error = %v, want ErrRequestTimeout", err)
	}
}

func TestSend_Interrupted(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := New()
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := c.Send(ctx, req)
	if !errors.Is(err, domain.ErrRequestInterrupted) {
		t.Errorf("Send() error = %v, want ErrRequestInterrupted", err)
	}
}

func TestSend_ExecutionFailure(t *testing.T) {
	c := New(WithTimeout(time.Second))
	// Nothing listens on this port.
	req, _ := http.NewRequest(http.MethodGet, "http://127.0.0.1:1/none", nil)

	_, err := c.Send(context.Background(), req)
	if !errors.Is(err, domain.ErrTransportFailure) {
		t.Errorf("Send() error = %v, want ErrTransportFailure", err)
	}

	// The raw cause must remain reachable.
	var ae *domain.AuthError
	if !errors.As(err, &ae) || ae.Cause == nil {
		t.Error("transport error should carry its underlying cause")
	}
}

func TestOptions(t *testing.T) {
	hc := &http.Client{}
	c := New(
		WithTimeout(5*time.Second),
		WithUserAgent("custom/2.0"),
		WithHTTPClient(hc),
	)

	if c.Timeout() != 5*time.Second {
		t.Errorf("Timeout() = %v, want 5s", c.Timeout())
	}
	if c.userAgent != "custom/2.0" {
		t.Errorf("userAgent = %q", c.userAgent)
	}
	if c.client != hc {
		t.Error("WithHTTPClient should replace the underlying client")
	}

	// Invalid values fall back to defaults.
	d := New(WithTimeout(0), WithUserAgent(""), WithHTTPClient(nil))
	if d.Timeout() != DefaultTimeout {
		t.Errorf("Timeout() = %v, want default", d.Timeout())
	}
	if d.userAgent != defaultUserAgent || d.client == nil {
		t.Error("invalid options should not clear defaults")
	}
}
