package session

import (
	"context"
	"errors"
)

// ErrStoreUnavailable is returned when the backing store cannot be reached.
var ErrStoreUnavailable = errors.New("session store unavailable")

// Store is the persisted key-value slot that holds session state: a
// cookie jar, browser local storage, Redis, or an in-memory map for
// tests. Values are opaque strings; a missing key is reported through
// the boolean, not an error.
//
// The slot is single-writer-intended and multi-reader: any consumer may
// read at any time, and a store shared across processes yields an
// eventually consistent view. No cross-process atomicity is claimed.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Watchable is implemented by stores that can report key changes to
// same-process readers.
type Watchable interface {
	OnChange(fn func(key string))
}
