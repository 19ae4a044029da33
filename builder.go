package authclient

import (
	"net/http"
	"strings"

	"github.com/hamzafarrukh73/authclient/client"
	"github.com/hamzafarrukh73/authclient/notify"
	"github.com/hamzafarrukh73/authclient/session"
	"github.com/hamzafarrukh73/authclient/token"
)

// Builder assembles an [Engine]. A Builder produces at most one Engine;
// Build fails on reuse.
type Builder struct {
	config Config

	store      session.Store
	httpClient *http.Client
	sink       notify.Sink
	navigator  Navigator

	built bool
}

func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration. Zero fields are filled
// with defaults at Build.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithBaseURL sets the API origin without replacing the rest of the
// configuration.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.API.BaseURL = baseURL
	return b
}

// WithStore installs the session persistence backend. Defaults to an
// in-memory store.
func (b *Builder) WithStore(s session.Store) *Builder {
	b.store = s
	return b
}

// WithHTTPClient replaces the pipeline's HTTP client.
func (b *Builder) WithHTTPClient(h *http.Client) *Builder {
	b.httpClient = h
	return b
}

// WithNotificationSink installs the sink that receives dispatched
// toasts. Defaults to a no-op sink.
func (b *Builder) WithNotificationSink(sink notify.Sink) *Builder {
	b.sink = sink
	return b
}

// WithNavigator installs the navigation hook used after auth
// transitions. Defaults to a no-op.
func (b *Builder) WithNavigator(n Navigator) *Builder {
	b.navigator = n
	return b
}

// WithMetricsEnabled toggles the engine counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, ErrBuilderReused
	}

	cfg := normalizeConfig(b.config)
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return nil, ErrMissingBaseURL
	}

	store := b.store
	if store == nil {
		store = session.NewMemoryStore()
	}
	state := session.NewState(store, cfg.Session.TokenKey, cfg.Session.UserKey)

	navigator := b.navigator
	if navigator == nil {
		navigator = NoOpNavigator{}
	}

	engine := &Engine{
		config: cfg,
		state:  state,
		policy: token.Policy{
			ExpiryBuffer:     cfg.Token.ExpiryBuffer,
			RefreshThreshold: cfg.Token.RefreshThreshold,
		},
		navigator: navigator,
		metrics:   NewMetrics(cfg.Metrics),
	}

	opts := []client.Option{
		client.WithTokenSource(client.TokenSourceFunc(state.Token)),
		client.WithUnauthorizedHook(engine.handleUnauthorized),
	}
	if b.httpClient != nil {
		opts = append(opts, client.WithHTTPClient(b.httpClient))
	}

	pipeline, err := client.New(client.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, opts...)
	if err != nil {
		return nil, err
	}
	engine.pipeline = pipeline
	engine.api = client.NewAuthAPI(pipeline)

	engine.notifier = notify.NewDispatcher(notify.Config{
		Enabled:    cfg.Notifications.Enabled,
		BufferSize: cfg.Notifications.BufferSize,
		DropIfFull: cfg.Notifications.DropIfFull,
	}, b.sink)

	b.built = true

	return engine, nil
}
