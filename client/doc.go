// Package client is the outbound HTTP pipeline of the session core.
//
// The pipeline is a dumb carrier by design: it attaches the current
// bearer token when one exists, but never decides whether that token is
// still good; expiry belongs to the session engine. What the pipeline
// does own is failure shape: every non-2xx response and every transport
// error leaves this package as a typed *apierror.Error, with the raw
// failure preserved as the error's cause, and every 401 additionally
// fires the configured unauthorized hook so the engine can tear the
// session down.
//
// [AuthAPI] binds the six auth endpoints; [Resource] is a generic
// repository for everything else the API serves.
package client
