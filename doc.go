// Package authclient is the client-side session and authentication core
// of a web front end: it owns the persisted bearer token and user
// record, decides when the session is valid, refreshes near-expired
// tokens, and converts every failed remote call into a typed error and
// a user-facing notification.
//
// The package is the public surface. It exposes [Engine], [Builder],
// [Config], and value types. The mechanics live in subpackages: token
// decoding and lifetime policy in token, the error taxonomy in
// apierror, the HTTP pipeline in client, persisted state in session,
// and notification delivery in notify.
//
// The engine never verifies token signatures. The server is the
// security boundary; the client only reads the expiry claim to decide
// when a token is no longer worth presenting.
//
// Engine methods are safe for concurrent use after [Builder.Build]:
// session state lives behind the store, the restore flag is atomic, and
// concurrent token refreshes are coalesced into a single network call.
package authclient
