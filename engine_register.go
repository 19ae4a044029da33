package authclient

import "context"

// Register submits the signup form. The server answers with a detail
// message and a pending email verification; no session is created here.
// With navigate set, the user is sent to the login path on success.
func (e *Engine) Register(ctx context.Context, payload SignupPayload, navigate bool) error {
	if e == nil || e.api == nil {
		return ErrEngineNotReady
	}

	if _, err := e.api.Register(ctx, payload); err != nil {
		e.metricInc(MetricRegisterFailure)
		return e.notifyError(ctx, err)
	}
	e.metricInc(MetricRegisterSuccess)

	if navigate {
		if err := e.navigator.GoTo(ctx, e.config.Paths.Login); err != nil {
			return e.notifyError(ctx, err)
		}
	}
	return nil
}
