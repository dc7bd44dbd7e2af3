package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})
	handler := CORS([]string{"https://events.example.com/", " "}, next)

	tests := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		wantOrigin  string
		wantMethods string
	}{
		{"allowed preflight", http.MethodOptions, "https://events.example.com", http.StatusNoContent, "https://events.example.com", "GET, POST, OPTIONS"},
		{"unknown preflight", http.MethodOptions, "https://evil.example", http.StatusNoContent, "", ""},
		{"allowed form post", http.MethodPost, "https://events.example.com", http.StatusFound, "https://events.example.com", ""},
		{"unknown form post", http.MethodPost, "https://evil.example", http.StatusFound, "", ""},
		{"same origin", http.MethodPost, "", http.StatusFound, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://test/submitContactForm", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantMethods, rr.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}

func TestCORS_no_origins_is_passthrough(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})
	handler := CORS(nil, next)

	req := httptest.NewRequest(http.MethodOptions, "http://test/register", nil)
	req.Header.Set("Origin", "https://events.example.com")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
