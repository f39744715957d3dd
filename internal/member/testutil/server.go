package testutil

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"finitefield.org/opai-member/internal/member/catalog"
	"finitefield.org/opai-member/internal/member/httpserver"
	"finitefield.org/opai-member/internal/member/observability"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithCatalogService wires a custom catalog service implementation.
func WithCatalogService(service catalog.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.CatalogService = service
	}
}

// WithCatalogYAML serves the catalog decoded from the provided YAML document.
func WithCatalogYAML(data []byte) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.CatalogService = catalog.NewStaticServiceFrom(data)
	}
}

// WithEnvironment sets the environment label exposed to templates.
func WithEnvironment(env string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Environment = env
	}
}

// WithMetrics wires a metrics registry so tests can inspect counters.
func WithMetrics(metrics *observability.Metrics) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Metrics = metrics
	}
}

// WithLogger overrides the request logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = logger
	}
}

// NewServer constructs an httptest server running the member HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:        ":0",
		Environment:    "Test",
		Logger:         zap.NewNop(),
		CatalogService: catalog.NewStaticService(),
		CSRFCookieName: "opai_csrf",
		CSRFHeaderName: "X-CSRF-Token",
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	srv := httpserver.New(cfg)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
