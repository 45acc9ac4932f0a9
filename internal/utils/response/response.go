// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Success responses may have any shape. Error responses always look like
// the following, carrying a fixed message and never decoder or driver detail:
//
//	{ "error": "Student not found" }
package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope returned for error cases.
type Response struct {
	Error string `json:"error"`
}

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Error builds an error envelope carrying msg.
func Error(msg string) Response {
	return Response{Error: msg}
}
