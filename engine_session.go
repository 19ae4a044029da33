package authclient

import (
	"context"
	"time"
)

// ValidateSession checks the current session and tears it down when it
// is no longer usable. An expired token or an anonymous user next to a
// token forces a logout; a simply absent token does not, there is
// nothing to tear down.
func (e *Engine) ValidateSession(ctx context.Context) bool {
	switch e.sessionVerdict(ctx, time.Now()) {
	case ReasonOK:
		return true
	case ReasonNoToken:
		return false
	default:
		e.metricInc(MetricSessionInvalidated)
		e.logout(ctx)
		return false
	}
}

// RestoreSession rebuilds the session from persisted state at startup.
// A token that is still fresh is kept as-is; an expired one is traded
// for a new one via refresh, and a refresh failure clears everything.
// Restoring reports true while a restore is in flight so the UI can
// hold rendering until the verdict lands.
func (e *Engine) RestoreSession(ctx context.Context) bool {
	e.restoring.Store(true)
	defer e.restoring.Store(false)

	raw, ok := e.state.Token(ctx)
	if !ok {
		e.metricInc(MetricRestoreFailure)
		return false
	}

	if e.policy.IsExpired(raw, time.Now()) {
		if err := e.refreshToken(ctx); err != nil {
			e.metricInc(MetricRestoreFailure)
			e.logout(ctx)
			return false
		}
		e.metricInc(MetricRestoreSuccess)
		return true
	}

	if e.state.User(ctx).IsAnonymous() {
		e.metricInc(MetricRestoreFailure)
		e.logout(ctx)
		return false
	}

	e.metricInc(MetricRestoreSuccess)
	return true
}

// Restoring reports whether a RestoreSession call is in flight.
func (e *Engine) Restoring() bool {
	return e.restoring.Load()
}

// FetchCurrentUser pulls the authoritative identity from the server and
// stores it, upgrading the thin record written at login. The stored
// role is kept when one is already set; the server payload carries the
// staff and superuser flags but no role name.
func (e *Engine) FetchCurrentUser(ctx context.Context) (UserRecord, error) {
	if e == nil || e.api == nil {
		return DefaultUser(), ErrEngineNotReady
	}

	resp, err := e.api.CurrentUser(ctx)
	if err != nil {
		return e.state.User(ctx), e.notifyError(ctx, err)
	}

	username := resp.Username
	if username == "" {
		username = resp.Email
	}

	role := "user"
	if current := e.state.User(ctx); !current.IsAnonymous() && current.Role != "" {
		role = current.Role
	}

	user := UserRecord{
		Username:    username,
		Role:        role,
		ImageURL:    resp.ImageURL,
		IsSuperuser: resp.IsSuperuser,
		IsStaff:     resp.IsStaff,
	}
	if err := e.state.SetUser(ctx, user); err != nil {
		return e.state.User(ctx), e.notifyError(ctx, err)
	}
	return user, nil
}
