package session

import (
	"context"
	"encoding/json"
)

// Default storage keys, matching what the web front end persists.
const (
	DefaultTokenKey = "accessToken"
	DefaultUserKey  = "user_data"
)

// State is the typed view over a Store that the session engine owns:
// one key for the bearer token, one for the serialized user record.
type State struct {
	store    Store
	tokenKey string
	userKey  string
}

func NewState(store Store, tokenKey, userKey string) *State {
	if tokenKey == "" {
		tokenKey = DefaultTokenKey
	}
	if userKey == "" {
		userKey = DefaultUserKey
	}
	return &State{store: store, tokenKey: tokenKey, userKey: userKey}
}

// Token returns the persisted access token. Any store failure reads as
// absent: a token that cannot be read cannot authenticate anything.
func (s *State) Token(ctx context.Context) (string, bool) {
	value, ok, err := s.store.Get(ctx, s.tokenKey)
	if err != nil || !ok || value == "" {
		return "", false
	}
	return value, true
}

func (s *State) SetToken(ctx context.Context, raw string) error {
	return s.store.Set(ctx, s.tokenKey, raw)
}

// User returns the persisted user record, falling back to the canonical
// default record only when the slot is missing or corrupt. A stored
// record with an empty username is returned as-is; only the anonymous
// sentinel marks a record invalid.
func (s *State) User(ctx context.Context) UserRecord {
	value, ok, err := s.store.Get(ctx, s.userKey)
	if err != nil || !ok || value == "" {
		return DefaultUser()
	}

	var user UserRecord
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		return DefaultUser()
	}
	return user
}

func (s *State) SetUser(ctx context.Context, user UserRecord) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, s.userKey, string(data))
}

// Clear drops the token and resets the user record to the default in a
// single pass. Both keys are written before Clear returns; failures are
// swallowed because logout must never fail.
func (s *State) Clear(ctx context.Context) {
	_ = s.store.Delete(ctx, s.tokenKey)
	_ = s.SetUser(ctx, DefaultUser())
}
