package authclient

import "context"

// VerifyEmail redeems an email verification key. On success the user is
// sent to the home path and told the address is verified.
func (e *Engine) VerifyEmail(ctx context.Context, key string) error {
	if e == nil || e.api == nil {
		return ErrEngineNotReady
	}

	if _, err := e.api.VerifyEmail(ctx, key); err != nil {
		e.metricInc(MetricVerificationFailure)
		return e.notifyError(ctx, err)
	}
	e.metricInc(MetricVerificationSuccess)

	if err := e.navigator.GoTo(ctx, e.config.Paths.Home); err != nil {
		return e.notifyError(ctx, err)
	}
	e.notifySuccess(ctx, "Email verified successfully", "")
	return nil
}

// ResendVerificationEmail asks the server to send a fresh verification
// email, surfacing the server's detail message on success.
func (e *Engine) ResendVerificationEmail(ctx context.Context, email string) error {
	if e == nil || e.api == nil {
		return ErrEngineNotReady
	}

	resp, err := e.api.ResendVerificationEmail(ctx, email)
	if err != nil {
		e.metricInc(MetricVerificationFailure)
		return e.notifyError(ctx, err)
	}

	description := resp.Detail
	if description == "" {
		description = "Verification email sent"
	}
	e.notifySuccess(ctx, "Success", description)
	return nil
}
