// Package session persists the two-slot session state of the client:
// the bearer access token under "accessToken" and the serialized user
// record under "user_data".
//
// The [Store] contract is deliberately a dumb key-value slot so it can
// be backed by cookies, local storage, Redis ([RedisStore]), or a map
// ([MemoryStore]). [State] is the typed view the engine works with; it
// guarantees a reader always sees a user record, falling back to the
// canonical anonymous default when nothing valid is stored.
package session
