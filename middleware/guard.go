package middleware

import (
	"context"
	"strings"

	authclient "github.com/hamzafarrukh73/authclient"
)

// Decision is the guard's verdict for one navigation. A disallowed
// navigation carries the path the user should land on instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Rule describes the protection applied to a route prefix.
type Rule struct {
	// Public routes skip the session check entirely.
	Public bool
	// RequireStaff additionally demands a staff or superuser record.
	RequireStaff bool
	// Roles, when non-empty, restricts the route to users holding one of
	// the listed roles. Staff and superusers pass regardless.
	Roles []string
}

// Guard decides, before each route change, whether the navigation may
// proceed. It validates the session through the engine, so a stale
// session is torn down as a side effect of being caught here.
type Guard struct {
	engine    *authclient.Engine
	loginPath string
	homePath  string
	rules     []prefixRule
}

type prefixRule struct {
	prefix string
	rule   Rule
}

// Option customizes a Guard at construction.
type Option func(*Guard)

// WithLoginPath overrides where unauthenticated navigations are sent.
func WithLoginPath(path string) Option {
	return func(g *Guard) {
		if path != "" {
			g.loginPath = path
		}
	}
}

// WithHomePath overrides where authorized-but-forbidden navigations are
// sent.
func WithHomePath(path string) Option {
	return func(g *Guard) {
		if path != "" {
			g.homePath = path
		}
	}
}

// WithRule protects every route under the given prefix. Longer prefixes
// win over shorter ones.
func WithRule(prefix string, rule Rule) Option {
	return func(g *Guard) {
		g.rules = append(g.rules, prefixRule{prefix: prefix, rule: rule})
	}
}

func NewGuard(engine *authclient.Engine, opts ...Option) *Guard {
	g := &Guard{
		engine:    engine,
		loginPath: "/auth/login",
		homePath:  "/",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check evaluates one navigation. While a session restore is in flight
// the navigation is allowed through; the page re-checks once the
// restore verdict lands, and holding navigation hostage to a slow store
// read would blank the whole UI.
func (g *Guard) Check(ctx context.Context, path string) Decision {
	rule := g.ruleFor(path)
	if rule.Public {
		return Decision{Allowed: true}
	}

	if g.engine.Restoring() {
		return Decision{Allowed: true}
	}

	if !g.engine.ValidateSession(ctx) {
		return Decision{RedirectTo: g.loginPath}
	}

	if rule.RequireStaff || len(rule.Roles) > 0 {
		user := g.engine.CurrentUser(ctx)
		if !userSatisfies(rule, user) {
			return Decision{RedirectTo: g.homePath}
		}
	}

	return Decision{Allowed: true}
}

func userSatisfies(rule Rule, user authclient.UserRecord) bool {
	if user.IsStaff || user.IsSuperuser {
		return true
	}
	if rule.RequireStaff {
		return false
	}
	for _, role := range rule.Roles {
		if user.Role == role {
			return true
		}
	}
	return false
}

func (g *Guard) ruleFor(path string) Rule {
	best := Rule{}
	bestLen := -1
	for _, pr := range g.rules {
		if len(pr.prefix) > bestLen && strings.HasPrefix(path, pr.prefix) {
			best = pr.rule
			bestLen = len(pr.prefix)
		}
	}
	return best
}
