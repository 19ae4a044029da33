package authclient

import (
	"time"

	"github.com/hamzafarrukh73/authclient/session"
	"github.com/hamzafarrukh73/authclient/token"
)

// Config holds the engine settings. Zero fields fall back to the
// defaults applied by [Builder.Build].
type Config struct {
	API           APIConfig
	Token         TokenConfig
	Session       SessionConfig
	Paths         PathsConfig
	Notifications NotificationConfig
	Metrics       MetricsConfig
}

// APIConfig points the request pipeline at the remote API.
type APIConfig struct {
	// BaseURL is the API origin including any path prefix,
	// e.g. "https://api.example.com/api/v1". Required.
	BaseURL string
	// Timeout bounds each remote call. The engine never retries.
	Timeout time.Duration
}

// TokenConfig tunes the token lifetime policy.
type TokenConfig struct {
	// ExpiryBuffer is subtracted from the token expiry when deciding
	// expiration, so the client gives up on a token before the server
	// does. Default 60s.
	ExpiryBuffer time.Duration
	// RefreshThreshold is the remaining lifetime under which a token
	// becomes refresh-eligible. Default 5m.
	RefreshThreshold time.Duration
}

// SessionConfig names the persisted store keys.
type SessionConfig struct {
	TokenKey string
	UserKey  string
}

// PathsConfig holds the navigation targets used after auth transitions.
type PathsConfig struct {
	Home  string
	Login string
}

// NotificationConfig controls the async notification dispatcher.
type NotificationConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig toggles the in-process counters.
type MetricsConfig struct {
	Enabled bool
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout: 30 * time.Second,
		},
		Token: TokenConfig{
			ExpiryBuffer:     token.DefaultExpiryBuffer,
			RefreshThreshold: token.DefaultRefreshThreshold,
		},
		Session: SessionConfig{
			TokenKey: session.DefaultTokenKey,
			UserKey:  session.DefaultUserKey,
		},
		Paths: PathsConfig{
			Home:  "/",
			Login: "/auth/login",
		},
		Notifications: NotificationConfig{
			Enabled:    true,
			BufferSize: 16,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// normalizeConfig fills zero fields with defaults. BaseURL stays as
// given; Build rejects an empty one.
func normalizeConfig(cfg Config) Config {
	def := defaultConfig()

	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = def.API.Timeout
	}
	if cfg.Token.ExpiryBuffer <= 0 {
		cfg.Token.ExpiryBuffer = def.Token.ExpiryBuffer
	}
	if cfg.Token.RefreshThreshold <= 0 {
		cfg.Token.RefreshThreshold = def.Token.RefreshThreshold
	}
	if cfg.Session.TokenKey == "" {
		cfg.Session.TokenKey = def.Session.TokenKey
	}
	if cfg.Session.UserKey == "" {
		cfg.Session.UserKey = def.Session.UserKey
	}
	if cfg.Paths.Home == "" {
		cfg.Paths.Home = def.Paths.Home
	}
	if cfg.Paths.Login == "" {
		cfg.Paths.Login = def.Paths.Login
	}
	if cfg.Notifications.BufferSize <= 0 {
		cfg.Notifications.BufferSize = def.Notifications.BufferSize
	}
	return cfg
}
