package tlsroots

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func generateTestCertPEM(t *testing.T) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	template := x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "test-ca"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		KeyUsage:              x509.KeyUsageCertSign,
		IsCA:                  true,
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("create certificate: %v", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

func TestNewPool(t *testing.T) {
	p, err := NewPool()
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	if p.Pool() == nil {
		t.Fatal("expected non-nil cert pool")
	}
}

func TestAddCertPEM(t *testing.T) {
	p := NewEmptyPool()

	if err := p.AddCertPEM(generateTestCertPEM(t)); err != nil {
		t.Fatalf("AddCertPEM: %v", err)
	}
	if got := len(p.Pool().Subjects()); got != 1 { //nolint:staticcheck
		t.Fatalf("expected 1 certificate, got %d", got)
	}
}

func TestAddCertPEMNoCerts(t *testing.T) {
	p := NewEmptyPool()

	err := p.AddCertPEM([]byte("not a certificate"))
	if !errors.Is(err, ErrNoCertsFound) {
		t.Fatalf("expected ErrNoCertsFound, got %v", err)
	}
}

func TestAddCertPEMMultiple(t *testing.T) {
	p := NewEmptyPool()

	pemData := append(generateTestCertPEM(t), generateTestCertPEM(t)...)
	if err := p.AddCertPEM(pemData); err != nil {
		t.Fatalf("AddCertPEM: %v", err)
	}
	if got := len(p.Pool().Subjects()); got != 2 { //nolint:staticcheck
		t.Fatalf("expected 2 certificates, got %d", got)
	}
}

func TestAddCertFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ca.pem")
	if err := os.WriteFile(path, generateTestCertPEM(t), 0o600); err != nil {
		t.Fatalf("write cert file: %v", err)
	}

	p := NewEmptyPool()
	if err := p.AddCertFile(path); err != nil {
		t.Fatalf("AddCertFile: %v", err)
	}
	if got := len(p.Pool().Subjects()); got != 1 { //nolint:staticcheck
		t.Fatalf("expected 1 certificate, got %d", got)
	}
}

func TestAddCertFileMissing(t *testing.T) {
	p := NewEmptyPool()

	if err := p.AddCertFile("/nonexistent/ca.pem"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAddCertDir(t *testing.T) {
	dir := t.TempDir()

	files := map[string][]byte{
		"proxy.pem":  generateTestCertPEM(t),
		"private.crt": generateTestCertPEM(t),
		"notes.txt":  []byte("ignored"),
		"broken.pem": []byte("not a certificate"),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	p := NewEmptyPool()
	if err := p.AddCertDir(dir); err != nil {
		t.Fatalf("AddCertDir: %v", err)
	}
	if got := len(p.Pool().Subjects()); got != 2 { //nolint:staticcheck
		t.Fatalf("expected 2 certificates, got %d", got)
	}
}

func TestTLSConfig(t *testing.T) {
	p := NewEmptyPool()
	if err := p.AddCertPEM(generateTestCertPEM(t)); err != nil {
		t.Fatalf("AddCertPEM: %v", err)
	}

	cfg := p.TLSConfig()
	if cfg.RootCAs != p.Pool() {
		t.Fatal("expected TLS config to use the pool")
	}
	if cfg.MinVersion != tls.VersionTLS12 {
		t.Fatalf("expected min version TLS 1.2, got %x", cfg.MinVersion)
	}
}
