package session

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, ok, _ := s.Get(ctx, "missing"); ok {
		t.Fatal("missing key reported present")
	}

	if err := s.Set(ctx, "accessToken", "abc"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := s.Get(ctx, "accessToken")
	if err != nil || !ok || value != "abc" {
		t.Fatalf("Get = (%q, %v, %v)", value, ok, err)
	}

	if err := s.Delete(ctx, "accessToken"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "accessToken"); ok {
		t.Fatal("deleted key reported present")
	}
}

func TestMemoryStoreOnChange(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var changes []string
	s.OnChange(func(key string) {
		changes = append(changes, key)
	})

	_ = s.Set(ctx, "accessToken", "abc")
	_ = s.Delete(ctx, "accessToken")
	_ = s.Delete(ctx, "accessToken") // no-op delete must not fire

	if len(changes) != 2 || changes[0] != "accessToken" || changes[1] != "accessToken" {
		t.Fatalf("changes = %v", changes)
	}
}

func TestStateTokenDefaults(t *testing.T) {
	ctx := context.Background()
	state := NewState(NewMemoryStore(), "", "")

	if _, ok := state.Token(ctx); ok {
		t.Fatal("fresh state reported a token")
	}

	if err := state.SetToken(ctx, "header.claims.sig"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	raw, ok := state.Token(ctx)
	if !ok || raw != "header.claims.sig" {
		t.Fatalf("Token = (%q, %v)", raw, ok)
	}
}

func TestStateUserDefaultsWhenMissingOrCorrupt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	state := NewState(store, "", "")

	if got := state.User(ctx); !got.IsAnonymous() || got.Role != "Guest" {
		t.Fatalf("fresh user = %+v, want default record", got)
	}

	_ = store.Set(ctx, DefaultUserKey, "{not json")
	if got := state.User(ctx); !got.IsAnonymous() {
		t.Fatalf("corrupt user slot = %+v, want default record", got)
	}
}

// A record that decoded cleanly stays valid even when the username is
// empty; the login flow stores exactly that when the server omits the
// user's email.
func TestStateUserKeepsEmptyUsername(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	state := NewState(store, "", "")

	_ = store.Set(ctx, DefaultUserKey, `{"username":"","role":"user"}`)

	got := state.User(ctx)
	if got.IsAnonymous() {
		t.Fatalf("stored record collapsed to default: %+v", got)
	}
	if got.Username != "" || got.Role != "user" {
		t.Fatalf("User = %+v, want empty username with stored role", got)
	}
}

func TestStateUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	state := NewState(NewMemoryStore(), "", "")

	user := UserRecord{Username: "alice@example.com", Role: "user", IsStaff: true}
	if err := state.SetUser(ctx, user); err != nil {
		t.Fatalf("SetUser failed: %v", err)
	}

	got := state.User(ctx)
	if got != user {
		t.Fatalf("User = %+v, want %+v", got, user)
	}
	if got.IsAnonymous() {
		t.Fatal("stored user reported anonymous")
	}
}

func TestStateClearResetsBothSlots(t *testing.T) {
	ctx := context.Background()
	state := NewState(NewMemoryStore(), "", "")

	_ = state.SetToken(ctx, "header.claims.sig")
	_ = state.SetUser(ctx, UserRecord{Username: "alice", Role: "user"})

	state.Clear(ctx)

	if _, ok := state.Token(ctx); ok {
		t.Fatal("token survived Clear")
	}
	if got := state.User(ctx); !got.IsAnonymous() {
		t.Fatalf("user after Clear = %+v, want default record", got)
	}
}

func TestDefaultUserIsInvalid(t *testing.T) {
	if !DefaultUser().IsAnonymous() {
		t.Fatal("default record not anonymous")
	}
	if (UserRecord{Username: "alice"}).IsAnonymous() {
		t.Fatal("named record reported anonymous")
	}
}
