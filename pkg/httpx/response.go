package httpx

import (
	"encoding/json"
	"io"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// MaxBodyBytes bounds every JSON request body.
const MaxBodyBytes = 1 << 20

// DecodeJSON reads a JSON body of at most MaxBodyBytes into v.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes)).Decode(v)
}
