package authclient

import "context"

// Login exchanges credentials for an access token and stores the new
// session. On success with navigate set, the user is sent to the home
// path. A response without an access token leaves prior session state
// untouched.
func (e *Engine) Login(ctx context.Context, payload LoginPayload, navigate bool) error {
	if e == nil || e.api == nil {
		return ErrEngineNotReady
	}

	resp, err := e.api.Login(ctx, payload)
	if err != nil {
		e.metricInc(MetricLoginFailure)
		return e.notifyError(ctx, err)
	}

	if resp.Access != "" {
		email := ""
		if resp.User != nil {
			email = resp.User.Email
		}
		user := UserRecord{
			Username: email,
			Role:     "user",
		}

		if err := e.state.SetToken(ctx, resp.Access); err != nil {
			e.metricInc(MetricLoginFailure)
			return e.notifyError(ctx, err)
		}
		if err := e.state.SetUser(ctx, user); err != nil {
			// Token without user is a half-written session; roll back.
			e.state.Clear(ctx)
			e.metricInc(MetricLoginFailure)
			return e.notifyError(ctx, err)
		}
		e.metricInc(MetricLoginSuccess)
	}

	if navigate {
		if err := e.navigator.GoTo(ctx, e.config.Paths.Home); err != nil {
			return e.notifyError(ctx, err)
		}
	}
	return nil
}

// Logout clears the stored token and resets the user record to the
// default. It cannot fail; store errors are swallowed because a logout
// that errors out would strand the UI in a half-authenticated state.
// With navigate set, the user is sent to the home path afterwards.
func (e *Engine) Logout(ctx context.Context, navigate bool) {
	e.logout(ctx)
	if navigate && e.navigator != nil {
		// Fire and forget; the session is already gone.
		_ = e.navigator.GoTo(ctx, e.config.Paths.Home)
	}
}

func (e *Engine) logout(ctx context.Context) {
	e.state.Clear(ctx)
	e.metricInc(MetricLogout)
}

// CurrentUser returns the stored user record, or the default record
// when none is stored.
func (e *Engine) CurrentUser(ctx context.Context) UserRecord {
	return e.state.User(ctx)
}

// Token returns the stored access token, if any. The token is returned
// as stored; expiry is the policy's concern, not the accessor's.
func (e *Engine) Token(ctx context.Context) (string, bool) {
	return e.state.Token(ctx)
}
