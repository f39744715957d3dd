package ui

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"finitefield.org/opai-member/internal/member/catalog"
	custommw "finitefield.org/opai-member/internal/member/httpserver/middleware"
	"finitefield.org/opai-member/internal/member/notify"
	"finitefield.org/opai-member/internal/member/observability"
	"finitefield.org/opai-member/internal/member/section"
	"finitefield.org/opai-member/internal/member/templates"
)

// Dependencies collects external services required by the UI handlers.
type Dependencies struct {
	CatalogService catalog.Service
	Metrics        *observability.Metrics
}

// Handlers exposes HTTP handlers for dashboard pages, pay intents and client actions.
type Handlers struct {
	catalog catalog.Service
	metrics *observability.Metrics
}

// NewHandlers wires the UI handler set.
func NewHandlers(deps Dependencies) *Handlers {
	service := deps.CatalogService
	if service == nil {
		service = catalog.NewStaticService()
	}
	return &Handlers{
		catalog: service,
		metrics: deps.Metrics,
	}
}

// Section renders the page mounted for key. The route key is passed to the
// resolver as the override.
func (h *Handlers) Section(key section.Key) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resolved := section.Resolve(r.URL.Path, key)
		opts := h.pageOptions(r, resolved)
		if resolved == section.QR || resolved == section.Tether {
			opts.PayAmount = r.URL.Query().Get("amount")
		}
		h.renderPage(w, r, opts, nil)
	}
}

// NotFound renders the not-found view for any unmatched route.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	c, err := h.catalog.Catalog(r.Context())
	if err != nil {
		// The shell renders without member data.
		observability.FromContext(r.Context()).Warn("catalog unavailable for not-found view", zap.Error(err))
	}
	data := templates.BuildNotFoundData(c, custommw.RequestPathFromContext(r.Context()), h.pageOptions(r, ""))
	render(w, r, http.StatusNotFound, templates.NotFound(data))
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handlers) pageOptions(r *http.Request, key section.Key) templates.PageOptions {
	ctx := r.Context()
	return templates.PageOptions{
		Section:     key,
		MenuOpen:    custommw.MenuOpenFromContext(ctx),
		CSRFToken:   custommw.CSRFTokenFromContext(ctx),
		Environment: custommw.EnvironmentFromContext(ctx),
	}
}

// renderPage renders a section as a full page, or only its content for htmx
// swaps. Notices raised into rec are shown inline on full pages and sent as
// HX-Trigger on fragments.
func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, opts templates.PageOptions, rec *notify.Recorder) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	c, err := h.catalog.Catalog(ctx)
	if err != nil {
		logger.Error("load catalog failed", zap.Error(err), zap.String("section", string(opts.Section)))
		status := http.StatusInternalServerError
		if errors.Is(err, catalog.ErrNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	if rec != nil {
		opts.Notices = rec.Notices()
	}
	data := templates.BuildPageData(c, opts)
	h.metrics.ObservePageRender(data.Section)

	if custommw.IsHTMXRequest(ctx) {
		setToastTrigger(w, r, rec)
		render(w, r, http.StatusOK, templates.Content(data))
		return
	}
	render(w, r, http.StatusOK, templates.Page(data))
}

func setToastTrigger(w http.ResponseWriter, r *http.Request, rec *notify.Recorder) {
	if rec == nil {
		return
	}
	header, err := rec.TriggerHeader()
	if err != nil {
		observability.FromContext(r.Context()).Warn("encode toast trigger failed", zap.Error(err))
		return
	}
	if header != "" {
		w.Header().Set("HX-Trigger", header)
	}
}

func render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	templ.Handler(component,
		templ.WithStatus(status),
		templ.WithErrorHandler(renderFailed),
	).ServeHTTP(w, r)
}

func renderFailed(r *http.Request, err error) http.Handler {
	observability.FromContext(r.Context()).Error("render template failed", zap.Error(err))
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	})
}
