package helpers

import (
	"net/http"
)

// Plaintext response bodies.
const (
	MsgInvalidBody        = "Invalid request body"
	MsgInvalidCredentials = "Invalid username or password"
)

// WriteText sets Content-Type to text/plain, writes statusCode, and writes msg as the body.
func WriteText(w http.ResponseWriter, statusCode int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(msg))
}

// Redirect answers with 302 Found to location.
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusFound)
}
