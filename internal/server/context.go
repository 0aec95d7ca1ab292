package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/teemow/calbridge/internal/agenda"
	"github.com/teemow/calbridge/internal/calendar"
	"github.com/teemow/calbridge/internal/config"
	"github.com/teemow/calbridge/internal/google"
)

// ServerContext holds the long-lived dependencies of the MCP server: the
// immutable configuration, the credential source, and the lazily created
// calendar provider. Tool handlers never construct clients themselves;
// they ask the context, which enables substituting fakes in tests.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg           *config.Config
	tokenProvider google.TokenProvider
	logger        *slog.Logger
	metrics       *Metrics

	mu       sync.RWMutex
	provider calendar.Provider
	agendaS  *agenda.Service
	shutdown bool
}

// NewServerContext creates a server context using the file-backed token
// provider derived from the configuration.
func NewServerContext(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*ServerContext, error) {
	conf, err := google.OAuthConfig(cfg.ClientSecretFile)
	if err != nil {
		return nil, err
	}
	return NewServerContextWithProvider(ctx, cfg, google.NewFileTokenProvider(conf, cfg.TokenFile), logger), nil
}

// NewServerContextWithProvider creates a server context with an explicit
// token provider.
func NewServerContextWithProvider(ctx context.Context, cfg *config.Config, tokenProvider google.TokenProvider, logger *slog.Logger) *ServerContext {
	shutdownCtx, cancel := context.WithCancel(ctx)
	if logger == nil {
		logger = slog.Default()
	}
	return &ServerContext{
		ctx:           shutdownCtx,
		cancel:        cancel,
		cfg:           cfg,
		tokenProvider: tokenProvider,
		logger:        logger,
		metrics:       NewMetrics(),
	}
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the immutable process configuration.
func (sc *ServerContext) Config() *config.Config {
	return sc.cfg
}

// Logger returns the server logger.
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// Metrics returns the tool-call metrics recorder.
func (sc *ServerContext) Metrics() *Metrics {
	return sc.metrics
}

// TokenProvider returns the credential source.
func (sc *ServerContext) TokenProvider() google.TokenProvider {
	return sc.tokenProvider
}

// SetProvider injects a calendar provider, replacing lazy construction.
// Used by tests to substitute a fake.
func (sc *ServerContext) SetProvider(provider calendar.Provider) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.provider = provider
	sc.agendaS = agenda.NewService(provider, sc.cfg, sc.logger)
}

// Agenda returns the agenda service, creating the underlying calendar
// client on first use. Creation fails if no stored credential exists yet.
func (sc *ServerContext) Agenda(ctx context.Context) (*agenda.Service, error) {
	sc.mu.RLock()
	if sc.agendaS != nil {
		defer sc.mu.RUnlock()
		return sc.agendaS, nil
	}
	sc.mu.RUnlock()

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.agendaS != nil {
		return sc.agendaS, nil
	}

	client, err := calendar.NewClient(ctx, sc.tokenProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar client: %w", err)
	}
	sc.provider = client
	sc.agendaS = agenda.NewService(client, sc.cfg, sc.logger)
	return sc.agendaS, nil
}

// Provider returns the calendar provider, creating it on first use.
func (sc *ServerContext) Provider(ctx context.Context) (calendar.Provider, error) {
	if _, err := sc.Agenda(ctx); err != nil {
		return nil, err
	}
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.provider, nil
}

// HasCredential reports whether a stored OAuth credential exists.
func (sc *ServerContext) HasCredential() bool {
	return sc.tokenProvider != nil && sc.tokenProvider.HasToken()
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
