package authclient

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/hamzafarrukh73/authclient/apierror"
	"github.com/hamzafarrukh73/authclient/client"
	"github.com/hamzafarrukh73/authclient/notify"
	"github.com/hamzafarrukh73/authclient/session"
	"github.com/hamzafarrukh73/authclient/token"
)

// Engine is the session manager. It is configured through [Builder] and
// treated as immutable after Build; all mutable session state lives in
// the backing store.
type Engine struct {
	config    Config
	state     *session.State
	pipeline  *client.Client
	api       *client.AuthAPI
	policy    token.Policy
	navigator Navigator
	notifier  *notify.Dispatcher
	metrics   *Metrics

	restoring atomic.Bool

	refreshMu       sync.Mutex
	refreshInflight *refreshCall
}

// Close shuts down the notification dispatcher, draining queued
// notifications. The engine must not be used afterwards.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.notifier != nil {
		e.notifier.Close()
	}
}

// Pipeline exposes the authenticated request pipeline so callers can
// build [client.Resource] repositories sharing the engine's token and
// error handling.
func (e *Engine) Pipeline() *client.Client {
	if e == nil {
		return nil
	}
	return e.pipeline
}

// NotificationsDropped reports notifications discarded under dispatcher
// backpressure.
func (e *Engine) NotificationsDropped() uint64 {
	if e == nil || e.notifier == nil {
		return 0
	}
	return e.notifier.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of the engine counters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// notifyError classifies err, dispatches the matching toast, and
// returns the typed error for the caller. Exactly one notification per
// failure.
func (e *Engine) notifyError(ctx context.Context, err error) *apierror.Error {
	typed := apierror.Classify(err)
	if e.notifier != nil {
		e.notifier.Dispatch(ctx, apierror.FormatForToast(typed))
	}
	return typed
}

func (e *Engine) notifySuccess(ctx context.Context, title, description string) {
	if e.notifier == nil {
		return
	}
	e.notifier.Dispatch(ctx, notify.Notification{
		Title:       title,
		Description: description,
		Color:       notify.ColorSuccess,
	})
}

// handleUnauthorized runs once per 401 intercepted by the pipeline: the
// session is torn down and the user is sent to the login page. The
// classified authentication error still reaches the original caller.
func (e *Engine) handleUnauthorized(ctx context.Context) {
	e.metricInc(MetricUnauthorizedIntercepted)
	e.logout(ctx)
	if e.navigator != nil {
		_ = e.navigator.GoTo(ctx, e.config.Paths.Login)
	}
}
