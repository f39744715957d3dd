package ui

import (
	"bytes"
	"net/http"
	"time"

	"go.uber.org/zap"

	"finitefield.org/opai-member/internal/member/observability"
	"finitefield.org/opai-member/public"
)

const presentationName = "opai.pdf"

// Presentation serves the program presentation inline, or as an attachment
// when ?download=1 is set.
func (h *Handlers) Presentation(w http.ResponseWriter, r *http.Request) {
	pdf, err := public.PresentationPDF()
	if err != nil {
		observability.FromContext(r.Context()).Error("read presentation failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	disposition := "inline"
	if r.URL.Query().Get("download") == "1" {
		disposition = "attachment"
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", disposition+`; filename="`+presentationName+`"`)
	http.ServeContent(w, r, presentationName, time.Time{}, bytes.NewReader(pdf))
}
