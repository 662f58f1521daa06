// Package transport provides HTTP communication for sfsession.
package transport

import (
	"context"
	"errors"
	"net"

	"github.com/averlon/sfsession-go/internal/core/domain"
)

// wrapError maps a raw transport failure onto the domain error taxonomy.
//
// Three causes are distinguished: cancellation, deadline expiry, and
// everything else the transport can fail with. The original error is kept
// as the cause so callers can still inspect it.
func wrapError(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return domain.ErrRequestInterrupted.WithCause(err)
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ErrRequestTimeout.WithCause(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.ErrRequestTimeout.WithCause(err)
	}

	return domain.ErrTransportFailure.WithCause(err)
}
