package authclient

import (
	"context"
	"time"
)

// ShouldRefreshToken reports whether the stored token is close enough
// to expiry to be worth refreshing proactively. No token means nothing
// to refresh.
func (e *Engine) ShouldRefreshToken(ctx context.Context) bool {
	raw, ok := e.state.Token(ctx)
	if !ok {
		return false
	}
	return e.policy.IsNearExpiry(raw, time.Now())
}

// RefreshAccessToken trades the refresh credential for a new access
// token and stores it. A failed refresh tears the session down; a stale
// token the server no longer honors is not a session worth keeping.
func (e *Engine) RefreshAccessToken(ctx context.Context) error {
	if e == nil || e.api == nil {
		return ErrEngineNotReady
	}

	if err := e.refreshToken(ctx); err != nil {
		e.metricInc(MetricRefreshFailure)
		typed := e.notifyError(ctx, err)
		e.logout(ctx)
		return typed
	}
	e.metricInc(MetricRefreshSuccess)
	return nil
}

type refreshCall struct {
	done chan struct{}
	err  error
}

// refreshToken coalesces concurrent refresh attempts: the first caller
// performs the network exchange, later callers wait on its outcome.
// Callers joining an in-flight refresh can still bail out on their own
// context.
func (e *Engine) refreshToken(ctx context.Context) error {
	e.refreshMu.Lock()
	if call := e.refreshInflight; call != nil {
		e.refreshMu.Unlock()
		e.metricInc(MetricRefreshCoalesced)
		select {
		case <-call.done:
			return call.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	call := &refreshCall{done: make(chan struct{})}
	e.refreshInflight = call
	e.refreshMu.Unlock()

	call.err = e.doRefresh(ctx)

	e.refreshMu.Lock()
	e.refreshInflight = nil
	e.refreshMu.Unlock()
	close(call.done)

	return call.err
}

func (e *Engine) doRefresh(ctx context.Context) error {
	// The refresh credential travels in an httpOnly cookie, so the
	// request body carries an empty refresh field.
	resp, err := e.api.RefreshToken(ctx, "")
	if err != nil {
		return err
	}
	if resp.Access == "" {
		return ErrRefreshInvalid
	}
	return e.state.SetToken(ctx, resp.Access)
}
