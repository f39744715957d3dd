package middleware

import (
	"context"
	"net/http"
	"strings"
)

type requestInfoKeyType int

const requestInfoKey requestInfoKeyType = iota

// RequestInfo holds lightweight request metadata exposed to handlers.
type RequestInfo struct {
	Path     string
	Method   string
	MenuOpen bool
}

// RequestInfoMiddleware annotates the context with the request path and the
// mobile menu state carried in ?menu=open.
func RequestInfoMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := &RequestInfo{
				Path:     r.URL.Path,
				Method:   r.Method,
				MenuOpen: strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("menu")), "open"),
			}
			ctx := context.WithValue(r.Context(), requestInfoKey, info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestInfoFromContext returns the request metadata stored by RequestInfoMiddleware.
func RequestInfoFromContext(ctx context.Context) (*RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey).(*RequestInfo)
	return info, ok && info != nil
}

// RequestPathFromContext returns the request path or empty string when unavailable.
func RequestPathFromContext(ctx context.Context) string {
	if info, ok := RequestInfoFromContext(ctx); ok {
		return info.Path
	}
	return ""
}

// MenuOpenFromContext reports whether the slide-over menu was requested open.
func MenuOpenFromContext(ctx context.Context) bool {
	if info, ok := RequestInfoFromContext(ctx); ok {
		return info.MenuOpen
	}
	return false
}
