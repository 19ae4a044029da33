package authclient

import (
	"context"
	"time"
)

// sessionVerdict is the pure validation decision: token presence, then
// lifetime, then user validity. Side effects belong to the callers.
func (e *Engine) sessionVerdict(ctx context.Context, now time.Time) ValidationReason {
	raw, ok := e.state.Token(ctx)
	if !ok {
		return ReasonNoToken
	}
	if e.policy.IsExpired(raw, now) {
		return ReasonExpired
	}
	if e.state.User(ctx).IsAnonymous() {
		return ReasonInvalidUser
	}
	return ReasonOK
}

// SessionVerdict reports why the current session is or is not
// authenticated, without mutating state.
func (e *Engine) SessionVerdict(ctx context.Context) ValidationReason {
	return e.sessionVerdict(ctx, time.Now())
}

// IsAuthenticated reports whether a token is stored, not expired, and
// paired with a non-anonymous user.
func (e *Engine) IsAuthenticated(ctx context.Context) bool {
	return e.sessionVerdict(ctx, time.Now()) == ReasonOK
}
