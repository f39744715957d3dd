package ui

import (
	"net/http"

	"finitefield.org/opai-member/internal/member/interact"
	"finitefield.org/opai-member/internal/member/notify"
	"finitefield.org/opai-member/internal/member/observability"
	"finitefield.org/opai-member/internal/member/templates"
)

// CopyAction applies the clipboard outcome reported by the browser and returns
// the resulting toasts.
func (h *Handlers) CopyAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "unable to parse form", http.StatusBadRequest)
		return
	}

	provider := interact.NewReportedProvider(r.PostFormValue("clipboard"), "")
	svc, rec := h.interactService(r, provider)
	svc.CopyValue(r.Context(), r.PostFormValue("value"), r.PostFormValue("label"))

	renderToasts(w, r, rec)
}

// ShareAction applies the share and clipboard outcomes reported by the browser.
// A successful share raises no notice and answers 204.
func (h *Handlers) ShareAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "unable to parse form", http.StatusBadRequest)
		return
	}

	provider := interact.NewReportedProvider(r.PostFormValue("clipboard"), r.PostFormValue("share"))
	svc, rec := h.interactService(r, provider)
	svc.ShareLink(r.Context(), r.PostFormValue("value"), r.PostFormValue("label"))

	if rec.Len() == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	renderToasts(w, r, rec)
}

func (h *Handlers) interactService(r *http.Request, provider interact.Provider) (*interact.Service, *notify.Recorder) {
	logger := observability.FromContext(r.Context())
	rec := notify.NewRecorder()
	svc := interact.NewService(provider,
		notify.Logging(logger, rec),
		interact.WithLogger(logger),
		interact.WithRecorder(h.metrics),
	)
	return svc, rec
}

func renderToasts(w http.ResponseWriter, r *http.Request, rec *notify.Recorder) {
	setToastTrigger(w, r, rec)
	render(w, r, http.StatusOK, templates.Toasts(templates.ToastsFromNotices(rec.Notices())))
}
