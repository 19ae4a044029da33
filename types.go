package authclient

import (
	"context"

	"github.com/hamzafarrukh73/authclient/client"
	"github.com/hamzafarrukh73/authclient/notify"
	"github.com/hamzafarrukh73/authclient/session"
)

// UserRecord is the persisted identity snapshot held alongside the
// access token.
type UserRecord = session.UserRecord

// DefaultUser returns the canonical unauthenticated record. A session
// never holds a nil or absent user.
func DefaultUser() UserRecord {
	return session.DefaultUser()
}

// LoginPayload is the credential pair for [Engine.Login].
type LoginPayload = client.LoginPayload

// SignupPayload is the registration form for [Engine.Register].
type SignupPayload = client.SignupPayload

// Notification is the user-facing toast dispatched on surfaced
// successes and failures.
type Notification = notify.Notification

// NotificationSink receives dispatched notifications.
type NotificationSink = notify.Sink

// ValidationReason explains a session validation verdict.
type ValidationReason uint8

const (
	// ReasonOK means the session is authenticated.
	ReasonOK ValidationReason = iota
	// ReasonNoToken means no access token is stored.
	ReasonNoToken
	// ReasonExpired means the stored token is past its usable lifetime.
	ReasonExpired
	// ReasonInvalidUser means a token is present but the stored user is
	// still the anonymous default.
	ReasonInvalidUser
)

func (r ValidationReason) String() string {
	switch r {
	case ReasonOK:
		return "ok"
	case ReasonNoToken:
		return "no_token"
	case ReasonExpired:
		return "expired"
	case ReasonInvalidUser:
		return "invalid_user"
	default:
		return "unknown"
	}
}

// Navigator performs UI navigation after auth transitions: home after
// login, the login page after registration or a rejected request.
type Navigator interface {
	GoTo(ctx context.Context, path string) error
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(ctx context.Context, path string) error

func (f NavigatorFunc) GoTo(ctx context.Context, path string) error {
	return f(ctx, path)
}

// NoOpNavigator ignores navigation. It is the default for headless
// embeddings and tests.
type NoOpNavigator struct{}

func (NoOpNavigator) GoTo(context.Context, string) error { return nil }
