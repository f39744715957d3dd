package ui

import (
	"net/http"

	"go.uber.org/zap"

	"finitefield.org/opai-member/internal/member/notify"
	"finitefield.org/opai-member/internal/member/observability"
	"finitefield.org/opai-member/internal/member/payintent"
	"finitefield.org/opai-member/internal/member/section"
)

// PayIntent handles a pay-by-QR or pay-by-topup submission and re-renders the
// form with the raw amount kept.
func (h *Handlers) PayIntent(flow payintent.Flow) http.HandlerFunc {
	key := section.QR
	if flow == payintent.FlowTether {
		key = section.Tether
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := observability.FromContext(ctx).With(zap.String("flow", string(flow)))

		if err := r.ParseForm(); err != nil {
			http.Error(w, "unable to parse form", http.StatusBadRequest)
			return
		}
		raw := r.PostFormValue("amount")

		rec := notify.NewRecorder()
		svc := payintent.NewService(
			notify.Logging(logger, rec),
			payintent.WithLogger(logger),
			payintent.WithRecorder(h.metrics),
		)
		svc.Submit(ctx, flow, raw)

		opts := h.pageOptions(r, key)
		opts.PayAmount = raw
		h.renderPage(w, r, opts, rec)
	}
}
