package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"finitefield.org/opai-member/internal/member/catalog"
	custommw "finitefield.org/opai-member/internal/member/httpserver/middleware"
	"finitefield.org/opai-member/internal/member/httpserver/ui"
	"finitefield.org/opai-member/internal/member/observability"
	"finitefield.org/opai-member/internal/member/payintent"
	"finitefield.org/opai-member/internal/member/section"
	"finitefield.org/opai-member/public"
)

// Config holds runtime options for the member dashboard HTTP server.
type Config struct {
	Address          string
	Environment      string
	Logger           *zap.Logger
	Metrics          *observability.Metrics
	CatalogService   catalog.Service
	CSRFCookieName   string
	CSRFCookieSecure bool
	CSRFHeaderName   string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	RequestTimeout   time.Duration
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) *http.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.InjectLogger(logger))
	router.Use(observability.Trace)
	router.Use(observability.RequestLogger(cfg.Metrics))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(durationOr(cfg.RequestTimeout, 60*time.Second)))
	router.Use(chimw.Compress(5))
	router.Use(chimw.GetHead)

	staticContent, err := public.StaticFS()
	if err != nil {
		logger.Fatal("embed static", zap.Error(err))
	}
	router.Handle("/public/static/*", http.StripPrefix("/public/static/", http.FileServer(http.FS(staticContent))))

	handlers := ui.NewHandlers(ui.Dependencies{
		CatalogService: cfg.CatalogService,
		Metrics:        cfg.Metrics,
	})

	router.Get("/healthz", handlers.Health)
	if cfg.Metrics != nil {
		router.Handle("/metrics", cfg.Metrics.Handler())
	}

	mountMemberRoutes(router, handlers, routeOptions{
		Environment: cfg.Environment,
		CSRF: custommw.CSRFConfig{
			CookieName: cfg.CSRFCookieName,
			HeaderName: cfg.CSRFHeaderName,
			Secure:     cfg.CSRFCookieSecure,
		},
	})

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  durationOr(cfg.ReadTimeout, 10*time.Second),
		WriteTimeout: durationOr(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:  durationOr(cfg.IdleTimeout, 60*time.Second),
	}
}

type routeOptions struct {
	Environment string
	CSRF        custommw.CSRFConfig
}

func mountMemberRoutes(router chi.Router, h *ui.Handlers, opts routeOptions) {
	router.Group(func(r chi.Router) {
		r.Use(custommw.HTMX())
		r.Use(custommw.RequestInfoMiddleware())
		r.Use(custommw.Environment(opts.Environment))
		r.Use(custommw.CSRF(opts.CSRF))

		r.Get("/opai.pdf", h.Presentation)

		r.Group(func(pages chi.Router) {
			pages.Use(custommw.NoStore)
			for _, item := range section.Nav() {
				pages.Get(item.Path, h.Section(item.Section))
			}
			pages.Post(section.QR.Path(), h.PayIntent(payintent.FlowQR))
			pages.Post(section.Tether.Path(), h.PayIntent(payintent.FlowTether))
		})

		r.Post("/actions/copy", h.CopyAction)
		r.Post("/actions/share", h.ShareAction)

		r.NotFound(h.NotFound)
		r.MethodNotAllowed(h.NotFound)
	})
}

func durationOr(value, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}
	return value
}
