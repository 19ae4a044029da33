package internaldefs

import (
	authclient "github.com/hamzafarrukh73/authclient"
)

// CounterDef binds one engine counter to its exported name and help
// text. Both exporters render from this single table so the two
// surfaces can never drift apart.
type CounterDef struct {
	ID   authclient.MetricID
	Name string
	Help string
}

var CounterDefs = []CounterDef{
	{ID: authclient.MetricLoginSuccess, Name: "authclient_login_success_total", Help: "Logins that stored a token and user."},
	{ID: authclient.MetricLoginFailure, Name: "authclient_login_failure_total", Help: "Rejected or failed login attempts."},
	{ID: authclient.MetricRegisterSuccess, Name: "authclient_register_success_total", Help: "Accepted registrations."},
	{ID: authclient.MetricRegisterFailure, Name: "authclient_register_failure_total", Help: "Rejected registrations."},
	{ID: authclient.MetricLogout, Name: "authclient_logout_total", Help: "Session teardowns, explicit and forced."},
	{ID: authclient.MetricRefreshSuccess, Name: "authclient_refresh_success_total", Help: "Refreshes that stored a new access token."},
	{ID: authclient.MetricRefreshFailure, Name: "authclient_refresh_failure_total", Help: "Refreshes that failed and tore the session down."},
	{ID: authclient.MetricRefreshCoalesced, Name: "authclient_refresh_coalesced_total", Help: "Refresh calls that joined an in-flight refresh."},
	{ID: authclient.MetricRestoreSuccess, Name: "authclient_restore_success_total", Help: "Startup restores that produced an authenticated session."},
	{ID: authclient.MetricRestoreFailure, Name: "authclient_restore_failure_total", Help: "Startup restores that ended unauthenticated."},
	{ID: authclient.MetricSessionInvalidated, Name: "authclient_session_invalidated_total", Help: "Sessions torn down by validation."},
	{ID: authclient.MetricUnauthorizedIntercepted, Name: "authclient_unauthorized_intercepted_total", Help: "401 responses intercepted by the pipeline."},
	{ID: authclient.MetricVerificationSuccess, Name: "authclient_verification_success_total", Help: "Successful email verifications."},
	{ID: authclient.MetricVerificationFailure, Name: "authclient_verification_failure_total", Help: "Failed email verifications."},
}
