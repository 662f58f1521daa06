// Package session implements the Salesforce session coordinator.
package session

import (
	"fmt"

	"github.com/averlon/sfsession-go/internal/core/domain"
)

// Listener observes session state changes.
//
// Both callbacks are fire-and-forget: they return nothing, must not
// assume any ordering relative to other listeners, and run synchronously
// inside the coordinator's transition, so they should be quick. A panic
// in a callback is recovered and logged; it never reaches the caller of
// Login or Logout and never prevents the remaining listeners from being
// notified.
//
// Listeners are compared by identity when registered, so implementations
// should be pointer types.
type Listener interface {
	// OnLogin is called after a new credential is installed.
	OnLogin(accessToken, instanceURL string)

	// OnLogout is called after the credential is cleared.
	OnLogout()
}

// notifyLogin fans a new credential out to all registered listeners.
// Runs before the transition lock is released, so a caller that observes
// the new credential knows every listener already heard about it.
func (c *Coordinator) notifyLogin(cred domain.Credential) {
	for _, l := range c.listeners.Snapshot() {
		c.safeNotify(l, func() { l.OnLogin(cred.AccessToken, cred.InstanceURL) })
	}
}

// notifyLogout tells all registered listeners the credential was cleared.
func (c *Coordinator) notifyLogout() {
	for _, l := range c.listeners.Snapshot() {
		c.safeNotify(l, func() { l.OnLogout() })
	}
}

// safeNotify invokes one listener callback, isolating its failure.
func (c *Coordinator) safeNotify(l Listener, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("session listener panicked",
				"listener", fmt.Sprintf("%T", l),
				"panic", r,
			)
			c.metrics.RecordListenerPanic()
		}
	}()
	fn()
}
