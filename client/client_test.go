package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/hamzafarrukh73/authclient/apierror"
)

func staticToken(raw string) TokenSource {
	return TokenSourceFunc(func(context.Context) (string, bool) {
		return raw, raw != ""
	})
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL}, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c, srv
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrMissingBaseURL) {
		t.Fatalf("err = %v, want ErrMissingBaseURL", err)
	}
}

func TestDoInjectsBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{}`))
	}, WithTokenSource(staticToken("header.claims.sig")))

	if err := c.Do(context.Background(), http.MethodGet, "/ping/", nil, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotAuth != "Bearer header.claims.sig" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatal("X-Request-ID not set")
	}
}

func TestDoSkipsBearerWithoutToken(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}, WithTokenSource(staticToken("")))

	if err := c.Do(context.Background(), http.MethodGet, "/ping/", nil, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization = %q, want empty", gotAuth)
	}
}

func TestDoEncodesBodyAndDecodesResponse(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if in["email"] != "alice@example.com" {
			t.Errorf("request body = %v", in)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		_, _ = w.Write([]byte(`{"detail":"ok"}`))
	})

	var out DetailResponse
	err := c.Do(context.Background(), http.MethodPost, "/echo/", map[string]string{"email": "alice@example.com"}, &out)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if out.Detail != "ok" {
		t.Fatalf("out = %+v", out)
	}
}

func TestDoClassifiesFailures(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"bad input","errors":{"email":"required"}}`))
	})

	err := c.Do(context.Background(), http.MethodPost, "/things/", map[string]string{}, nil)
	var typed *apierror.Error
	if !errors.As(err, &typed) {
		t.Fatalf("err = %v, want *apierror.Error", err)
	}
	if typed.Kind != apierror.KindValidation {
		t.Fatalf("kind = %v, want validation", typed.Kind)
	}
	if typed.Fields["email"] != "required" {
		t.Fatalf("fields = %v", typed.Fields)
	}

	var failure *apierror.HTTPFailure
	if !errors.As(err, &failure) || failure.Status != http.StatusUnprocessableEntity {
		t.Fatal("raw failure not preserved as cause")
	}
}

func TestDoUnauthorizedHookFiresOncePerResponse(t *testing.T) {
	var hookCalls int
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"expired"}`))
	}, WithUnauthorizedHook(func(context.Context) {
		hookCalls++
	}))

	err := c.Do(context.Background(), http.MethodGet, "/private/", nil, nil)
	var typed *apierror.Error
	if !errors.As(err, &typed) || typed.Kind != apierror.KindAuthentication {
		t.Fatalf("err = %v, want authentication error", err)
	}
	if hookCalls != 1 {
		t.Fatalf("hook calls = %d, want 1", hookCalls)
	}

	_ = c.Do(context.Background(), http.MethodGet, "/private/", nil, nil)
	if hookCalls != 2 {
		t.Fatalf("hook calls = %d, want 2", hookCalls)
	}
}

func TestDoTransportErrorIsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	doErr := c.Do(context.Background(), http.MethodGet, "/ping/", nil, nil)
	var typed *apierror.Error
	if !errors.As(doErr, &typed) || typed.Kind != apierror.KindNetwork {
		t.Fatalf("err = %v, want network error", doErr)
	}
}

func TestAuthAPIEndpoints(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody map[string]string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody = nil
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"access":"tok","user":{"email":"alice@example.com"},"detail":"sent"}`))
	})
	api := NewAuthAPI(c)
	ctx := context.Background()

	resp, err := api.Login(ctx, LoginPayload{Email: "alice@example.com", Password: "pw"})
	if err != nil || resp.Access != "tok" || resp.User == nil || resp.User.Email != "alice@example.com" {
		t.Fatalf("Login = (%+v, %v)", resp, err)
	}
	if gotPath != EndpointLogin || gotMethod != http.MethodPost {
		t.Fatalf("login hit %s %s", gotMethod, gotPath)
	}

	if _, err := api.VerifyEmail(ctx, "abc123"); err != nil {
		t.Fatalf("VerifyEmail failed: %v", err)
	}
	if gotPath != EndpointVerifyEmail || gotBody["key"] != "abc123" {
		t.Fatalf("verify hit %s with %v", gotPath, gotBody)
	}

	if _, err := api.ResendVerificationEmail(ctx, "alice@example.com"); err != nil {
		t.Fatalf("ResendVerificationEmail failed: %v", err)
	}
	if gotPath != EndpointResendEmail || gotBody["email"] != "alice@example.com" {
		t.Fatalf("resend hit %s with %v", gotPath, gotBody)
	}

	if _, err := api.RefreshToken(ctx, ""); err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if gotPath != EndpointTokenRefresh || gotMethod != http.MethodPost {
		t.Fatalf("refresh hit %s %s", gotMethod, gotPath)
	}
	if refresh, ok := gotBody["refresh"]; !ok || refresh != "" {
		t.Fatalf("refresh body = %v, want empty refresh field", gotBody)
	}

	if _, err := api.CurrentUser(ctx); err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if gotPath != EndpointCurrentUser || gotMethod != http.MethodGet {
		t.Fatalf("current user hit %s %s", gotMethod, gotPath)
	}
}

type testItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestResourceListUnwrapsBothShapes(t *testing.T) {
	payloads := map[string]string{
		"/plain/":     `[{"id":1,"name":"a"},{"id":2,"name":"b"}]`,
		"/paginated/": `{"count":2,"results":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}`,
	}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payloads[r.URL.Path]))
	})

	for path := range payloads {
		items, err := NewResource[testItem](c, path).List(context.Background(), nil)
		if err != nil {
			t.Fatalf("List(%s) failed: %v", path, err)
		}
		if len(items) != 2 || items[0].Name != "a" || items[1].ID != 2 {
			t.Fatalf("List(%s) = %+v", path, items)
		}
	}
}

func TestResourceListQueryParams(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	})

	params := url.Values{"page": {"2"}, "search": {"galaxy"}}
	if _, err := NewResource[testItem](c, "/items/").List(context.Background(), params); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if gotQuery.Get("page") != "2" || gotQuery.Get("search") != "galaxy" {
		t.Fatalf("query = %v", gotQuery)
	}
}

func TestResourceItemOperations(t *testing.T) {
	var gotPath, gotMethod string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(`{"id":7,"name":"x"}`))
	})
	res := NewResource[testItem](c, "/items/")
	ctx := context.Background()

	if item, err := res.Get(ctx, "7"); err != nil || item.ID != 7 {
		t.Fatalf("Get = (%+v, %v)", item, err)
	}
	if gotPath != "/items/7/" || gotMethod != http.MethodGet {
		t.Fatalf("get hit %s %s", gotMethod, gotPath)
	}

	if _, err := res.Create(ctx, map[string]string{"name": "x"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("create used %s", gotMethod)
	}

	if _, err := res.Patch(ctx, "7", map[string]string{"name": "y"}); err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if gotPath != "/items/7/" || gotMethod != http.MethodPatch {
		t.Fatalf("patch hit %s %s", gotMethod, gotPath)
	}

	if err := res.Delete(ctx, "7"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("delete used %s", gotMethod)
	}
}
