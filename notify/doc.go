// Package notify carries user-facing notifications from the session engine
// to whatever renders them: a toast component, a log file, or a test.
//
// The engine never talks to a sink directly. Notifications go through a
// [Dispatcher] with a bounded queue so that login, refresh, and restore
// paths never block on a slow consumer. Sinks implement [Sink]; the package
// ships [NoOpSink], [ChannelSink], and [JSONWriterSink].
package notify
