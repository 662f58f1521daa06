// Package session implements the Salesforce session coordinator.
package session

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/averlon/sfsession-go/internal/config"
	"github.com/averlon/sfsession-go/internal/core/domain"
	"github.com/averlon/sfsession-go/internal/telemetry/logger"
	"github.com/averlon/sfsession-go/internal/telemetry/metric"
	"github.com/averlon/sfsession-go/internal/transport"
	"github.com/averlon/sfsession-go/pkg/cset"
)

// Coordinator is the single source of truth for the current Salesforce
// credential. Many concurrent callers share one Coordinator; stale-token
// fencing guarantees that at most one login exchange is ever in flight
// for a given invalidated token.
type Coordinator struct {
	cfg     config.AuthSection
	client  transport.Client
	log     logger.Logger
	metrics *metric.Registry

	// listeners is concurrent-safe independent of the transition lock,
	// so observers may (un)register while an exchange is in progress.
	listeners *cset.Set[Listener]

	// mu serializes login/logout transitions, network I/O included.
	// All logins fully serialize; fencing already limits how often they
	// happen, so the simpler locking wins over parallelism here.
	mu sync.Mutex

	// stateMu guards the credential cell so reads never block behind an
	// in-flight exchange.
	stateMu sync.RWMutex
	cred    domain.Credential
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the coordinator's logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics sets the metrics registry. Nil is fine; observations
// become no-ops.
func WithMetrics(m *metric.Registry) Option {
	return func(c *Coordinator) {
		c.metrics = m
	}
}

// NewCoordinator creates a session coordinator for the given
// authentication configuration.
//
// The configuration must already be verified; NewCoordinator re-checks
// it and fails on missing required fields rather than deferring the
// failure to the first network call.
func NewCoordinator(cfg config.AuthSection, client transport.Client, opts ...Option) (*Coordinator, error) {
	if err := config.VerifyAuth(cfg); err != nil {
		return nil, err
	}

	c := &Coordinator{
		cfg:       cfg,
		client:    client,
		log:       logger.Default(),
		listeners: cset.New[Listener](),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.log = c.log.With("component", "session")

	return c, nil
}

// Credential returns the currently held credential. A zero credential
// means unauthenticated.
func (c *Coordinator) Credential() domain.Credential {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.cred
}

// Login returns a currently-valid credential.
//
// old is the credential the caller believes is current (zero if the
// caller never authenticated). Re-authentication proceeds only if no
// credential is held, or the held one still matches old; otherwise
// another caller already refreshed it and the held credential is
// returned with no network call.
//
// If a credential is held before re-login, it is revoked best-effort: a
// revoke failure is logged and does not abort the login, since the
// caller intends to replace the token either way.
//
// On success the new credential is installed and every listener receives
// OnLogin before Login returns. On failure a typed error is returned and
// the session is left empty.
func (c *Coordinator) Login(ctx context.Context, old domain.Credential) (domain.Credential, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Fencing: the held credential moved past the caller's belief, so a
	// concurrent caller already completed the refresh.
	cur := c.Credential()
	if !cur.IsZero() && !cur.Matches(old) {
		return cur, nil
	}

	exchangeID := ulid.Make().String()
	log := c.log.With("exchange_id", exchangeID)
	ctx = logger.WithExchangeID(ctx, exchangeID)

	// Re-logins keep targeting the org-specific endpoint even though the
	// revoke below clears the credential.
	base := cur.InstanceURL

	if !cur.IsZero() {
		if err := c.logoutLocked(ctx, log); err != nil {
			log.Warn("failed to revoke stale token, proceeding with login", "error", err)
		}
	}

	start := time.Now()

	req, err := BuildLoginRequest(ctx, c.cfg, base)
	if err != nil {
		return domain.Credential{}, err
	}

	log.Debug("sending login request", "url", req.URL.Redacted())

	resp, err := c.client.Send(ctx, req)
	if err != nil {
		c.metrics.ObserveLogin("transport_error", time.Since(start))
		log.Error("login transport failure", "error", err)
		return domain.Credential{}, err
	}

	cred, err := ClassifyLoginResponse(resp)
	if err != nil {
		c.metrics.ObserveLogin(loginFailureResult(resp.Status), time.Since(start))
		log.Error("login failed", "status", resp.Status, "error", err)
		return domain.Credential{}, err
	}

	c.install(cred)
	c.notifyLogin(cred)

	c.metrics.ObserveLogin("success", time.Since(start))
	log.Info("login succeeded",
		"instance_url", cred.InstanceURL,
		"duration", time.Since(start),
	)

	return cred, nil
}

// Logout revokes the current credential.
//
// Idempotent: with no credential held it returns immediately without a
// network call. Whatever the revoke outcome, the credential is cleared
// and every listener receives OnLogout; a half-failed revoke must not
// leave the process holding a token it believes is already invalid
// server-side.
func (c *Coordinator) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	exchangeID := ulid.Make().String()
	log := c.log.With("exchange_id", exchangeID)
	ctx = logger.WithExchangeID(ctx, exchangeID)

	return c.logoutLocked(ctx, log)
}

// logoutLocked performs the revoke exchange. Caller holds mu.
func (c *Coordinator) logoutLocked(ctx context.Context, log logger.Logger) error {
	cur := c.Credential()
	if cur.IsZero() {
		return nil
	}

	start := time.Now()

	// Cleanup is unconditional.
	defer func() {
		c.clear()
		c.notifyLogout()
	}()

	base := loginBase(c.cfg, cur.InstanceURL)
	req, err := BuildRevokeRequest(ctx, base, cur.AccessToken)
	if err != nil {
		c.metrics.ObserveLogout("error", time.Since(start))
		return err
	}

	log.Debug("sending revoke request", "url", base+"/services/oauth2/revoke")

	resp, err := c.client.Send(ctx, req)
	if err != nil {
		c.metrics.ObserveLogout("transport_error", time.Since(start))
		log.Error("logout transport failure", "error", err)
		return err
	}

	if resp.Status != http.StatusOK {
		c.metrics.ObserveLogout("error", time.Since(start))
		err := domain.ErrLogoutStatus.
			WithStatus(resp.Status).
			WithDetails(fmt.Sprintf("status:[%d] reason:[%s]", resp.Status, resp.Reason))
		log.Error("logout failed", "status", resp.Status, "error", err)
		return err
	}

	c.metrics.ObserveLogout("success", time.Since(start))
	log.Info("logout succeeded", "duration", time.Since(start))
	return nil
}

// AddListener registers an observer. Returns false if it was already
// registered.
func (c *Coordinator) AddListener(l Listener) bool {
	return c.listeners.Add(l)
}

// RemoveListener unregisters an observer. Returns false if it was not
// registered.
func (c *Coordinator) RemoveListener(l Listener) bool {
	return c.listeners.Remove(l)
}

// Start performs the initial login using whatever credential is held
// (typically none).
func (c *Coordinator) Start(ctx context.Context) error {
	_, err := c.Login(ctx, c.Credential())
	return err
}

// Stop revokes the current credential on shutdown.
func (c *Coordinator) Stop(ctx context.Context) error {
	return c.Logout(ctx)
}

// install sets the credential cell.
func (c *Coordinator) install(cred domain.Credential) {
	c.stateMu.Lock()
	c.cred = cred
	c.stateMu.Unlock()
	c.metrics.SetSessionActive(true)
}

// clear empties the credential cell.
func (c *Coordinator) clear() {
	c.stateMu.Lock()
	c.cred = domain.Credential{}
	c.stateMu.Unlock()
	c.metrics.SetSessionActive(false)
}

// loginFailureResult maps a classified login failure to a metrics label.
func loginFailureResult(status int) string {
	switch status {
	case http.StatusOK:
		return "decode_error"
	case http.StatusBadRequest:
		return "rejected"
	default:
		return "protocol_error"
	}
}
