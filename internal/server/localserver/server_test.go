package localserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/averlon/sfsession-go/internal/core/domain"
)

type fakeSource struct {
	cred domain.Credential
}

func (f *fakeSource) Credential() domain.Credential { return f.cred }

func startServer(t *testing.T, source CredentialSource) (*Server, *http.Client) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sfsession.sock")
	srv := New(path, source)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(path); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("socket never appeared")
		}
		time.Sleep(5 * time.Millisecond)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			t.Errorf("shutdown: %v", err)
		}
		if err := <-errCh; err != nil {
			t.Errorf("serve: %v", err)
		}
	})

	client := &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", path)
			},
		},
		Timeout: 2 * time.Second,
	}
	return srv, client
}

func TestCredentialEndpoint(t *testing.T) {
	source := &fakeSource{cred: domain.Credential{
		AccessToken: "00Dxx0000001gEr!AQ4AQFhWmvQzaVxnNPAHdyv",
		InstanceURL: "https://na1.salesforce.com",
		ID:          "https://login.salesforce.com/id/00Dxx/005xx",
	}}
	_, client := startServer(t, source)

	resp, err := client.Get("http://localhost/credential")
	if err != nil {
		t.Fatalf("get credential: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var cred domain.Credential
	if err := json.NewDecoder(resp.Body).Decode(&cred); err != nil {
		t.Fatalf("decode credential: %v", err)
	}
	if cred.AccessToken != source.cred.AccessToken {
		t.Errorf("access token = %q, want %q", cred.AccessToken, source.cred.AccessToken)
	}
	if cred.InstanceURL != source.cred.InstanceURL {
		t.Errorf("instance url = %q, want %q", cred.InstanceURL, source.cred.InstanceURL)
	}
}

func TestCredentialEndpointNoSession(t *testing.T) {
	_, client := startServer(t, &fakeSource{})

	resp, err := client.Get("http://localhost/credential")
	if err != nil {
		t.Fatalf("get credential: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 without a session, got %d", resp.StatusCode)
	}
}

func TestCredentialEndpointMethodNotAllowed(t *testing.T) {
	_, client := startServer(t, &fakeSource{})

	resp, err := client.Post("http://localhost/credential", "application/json", nil)
	if err != nil {
		t.Fatalf("post credential: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	_, client := startServer(t, &fakeSource{})

	resp, err := client.Get("http://localhost/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestSocketPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfsession.sock")
	srv := New(path, &fakeSource{})

	go srv.ListenAndServe() //nolint:errcheck

	deadline := time.Now().Add(2 * time.Second)
	for {
		if fi, err := os.Stat(path); err == nil {
			if perm := fi.Mode().Perm(); perm != 0o600 {
				t.Errorf("socket mode = %o, want 600", perm)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("socket never appeared")
		}
		time.Sleep(5 * time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected socket file removed after shutdown")
	}
}

func TestShutdownReplacesStaleSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfsession.sock")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("create stale socket file: %v", err)
	}

	srv := New(path, &fakeSource{})
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if fi, err := os.Stat(path); err == nil && fi.Mode()&os.ModeSocket != 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("stale file was not replaced by a socket")
		}
		time.Sleep(5 * time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("serve: %v", err)
	}
}
