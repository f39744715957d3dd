package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestCSRFMiddleware(t *testing.T) {
	mw := CSRF(CSRFConfig{CookieName: "csrf", HeaderName: "X-CSRF-Token"})
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("issues cookie on GET", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if CSRFTokenFromContext(r.Context()) == "" {
				t.Fatalf("expected token in context")
			}
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		found := false
		for _, c := range rr.Result().Cookies() {
			if c.Name == "csrf" && c.Value != "" {
				found = true
				if !c.HttpOnly || c.SameSite != http.SameSiteStrictMode {
					t.Fatalf("expected strict httponly cookie, got %+v", c)
				}
			}
		}
		if !found {
			t.Fatalf("expected csrf cookie to be issued")
		}
	})

	t.Run("rejects POST without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/qr", nil)
		req.AddCookie(&http.Cookie{Name: "csrf", Value: "token"})
		rr := httptest.NewRecorder()
		mw(ok).ServeHTTP(rr, req)
		if rr.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rr.Code)
		}
	})

	t.Run("rejects POST with mismatched header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/qr", nil)
		req.AddCookie(&http.Cookie{Name: "csrf", Value: "token"})
		req.Header.Set("X-CSRF-Token", "other")
		rr := httptest.NewRecorder()
		mw(ok).ServeHTTP(rr, req)
		if rr.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rr.Code)
		}
	})

	t.Run("accepts matching header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/actions/copy", nil)
		req.AddCookie(&http.Cookie{Name: "csrf", Value: "token"})
		req.Header.Set("X-CSRF-Token", "token")
		rr := httptest.NewRecorder()
		mw(ok).ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
	})

	t.Run("accepts matching form field", func(t *testing.T) {
		form := url.Values{"_csrf": {"token"}, "amount": {"25"}}
		req := httptest.NewRequest(http.MethodPost, "/tether", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: "csrf", Value: "token"})
		rr := httptest.NewRecorder()
		mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.PostFormValue("amount"); got != "25" {
				t.Fatalf("expected form to remain readable, got %q", got)
			}
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
	})
}

func TestHTMXMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    bool
	}{
		{name: "plain request", want: false},
		{name: "htmx request", headers: map[string]string{"HX-Request": "true"}, want: true},
		{name: "boosted navigation", headers: map[string]string{"HX-Request": "true", "HX-Boosted": "true"}, want: false},
		{name: "history restore", headers: map[string]string{"HX-Request": "true", "HX-History-Restore-Request": "true"}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			var got bool
			HTMX()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = IsHTMXRequest(r.Context())
			})).ServeHTTP(rr, req)
			if got != tc.want {
				t.Fatalf("expected IsHTMXRequest=%v, got %v", tc.want, got)
			}
		})
	}
}

func TestRequestInfoMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/wallet?menu=OPEN", nil)
	rr := httptest.NewRecorder()
	RequestInfoMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path := RequestPathFromContext(r.Context()); path != "/wallet" {
			t.Fatalf("expected /wallet, got %s", path)
		}
		if !MenuOpenFromContext(r.Context()) {
			t.Fatalf("expected menu open")
		}
	})).ServeHTTP(rr, req)

	if MenuOpenFromContext(req.Context()) {
		t.Fatalf("bare context must report menu closed")
	}
}

func TestEnvironmentAndNoStore(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	Environment("  ")(NoStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if env := EnvironmentFromContext(r.Context()); env != "Development" {
			t.Fatalf("expected Development, got %s", env)
		}
	}))).ServeHTTP(rr, req)

	if got := rr.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("expected no-store, got %q", got)
	}
}
