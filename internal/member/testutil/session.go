package testutil

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// Session is a cookie-carrying client bound to a test server.
type Session struct {
	t      testing.TB
	server *httptest.Server
	Client *http.Client
	Token  string
}

// NewSession loads the dashboard once so the CSRF cookie is issued, and keeps
// the token advertised in the page meta tag.
func NewSession(t testing.TB, ts *httptest.Server) *Session {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	s := &Session{
		t:      t,
		server: ts,
		Client: &http.Client{Jar: jar},
	}

	resp, body := s.Get("/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("bootstrap session: status %d", resp.StatusCode)
	}
	token, ok := ParseHTML(t, body).Find(`meta[name="csrf-token"]`).Attr("content")
	if !ok || token == "" {
		t.Fatalf("bootstrap session: csrf token missing")
	}
	s.Token = token
	return s
}

// Get issues a GET request with optional extra headers and returns the drained body.
func (s *Session) Get(path string, header http.Header) (*http.Response, []byte) {
	s.t.Helper()

	req, err := http.NewRequest(http.MethodGet, s.server.URL+path, nil)
	if err != nil {
		s.t.Fatalf("new request: %v", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	return s.do(req)
}

// PostForm submits form values with the session token in the X-CSRF-Token header.
func (s *Session) PostForm(path string, values url.Values, header http.Header) (*http.Response, []byte) {
	s.t.Helper()

	req, err := http.NewRequest(http.MethodPost, s.server.URL+path, strings.NewReader(values.Encode()))
	if err != nil {
		s.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if s.Token != "" {
		req.Header.Set("X-CSRF-Token", s.Token)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	return s.do(req)
}

func (s *Session) do(req *http.Request) (*http.Response, []byte) {
	s.t.Helper()

	resp, err := s.Client.Do(req)
	if err != nil {
		s.t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.t.Fatalf("read body: %v", err)
	}
	return resp, body
}
