package testutil

import (
	"net/http"
	"net/http/httptest"
)

// MockServer wraps httptest.Server and records incoming requests. EFA
// queries carry unescaped characters, so Queries keeps the raw request
// URI strings as the client sent them.
type MockServer struct {
	*httptest.Server
	Requests []*http.Request
	Queries  []string
}

// NewMockServer creates a new mock HTTP server
func NewMockServer(handler http.HandlerFunc) *MockServer {
	ms := &MockServer{
		Requests: make([]*http.Request, 0),
		Queries:  make([]string, 0),
	}

	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ms.Requests = append(ms.Requests, r)
		ms.Queries = append(ms.Queries, r.RequestURI)
		handler(w, r)
	}))

	return ms
}

// JSONHandler answers every request with the given body and status 200.
func JSONHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

// StatusHandler answers every request with the given status code.
func StatusHandler(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}
}

// LastRequest returns the most recent request
func (ms *MockServer) LastRequest() *http.Request {
	if len(ms.Requests) == 0 {
		return nil
	}
	return ms.Requests[len(ms.Requests)-1]
}

// LastQuery returns the raw URI of the most recent request
func (ms *MockServer) LastQuery() string {
	if len(ms.Queries) == 0 {
		return ""
	}
	return ms.Queries[len(ms.Queries)-1]
}

// RequestCount returns the number of requests received
func (ms *MockServer) RequestCount() int {
	return len(ms.Requests)
}

// Reset clears the request history
func (ms *MockServer) Reset() {
	ms.Requests = make([]*http.Request, 0)
	ms.Queries = make([]string, 0)
}
