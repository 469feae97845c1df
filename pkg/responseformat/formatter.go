// Package responseformat encodes API payloads as JSON or MessagePack.
// JSON is the default; clients opt into MessagePack with the
// format=msgpack query parameter. MessagePack encoding reuses the json
// struct tags so both formats carry identical field names.
package responseformat

import (
	"encoding/json"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
)

// Formatter handles encoding and writing responses in JSON or MessagePack format
type Formatter struct{}

// NewFormatter creates a new response formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// WriteResponse writes data with a 200 status in the format the request
// asked for.
func (f *Formatter) WriteResponse(w http.ResponseWriter, req *http.Request, data any, headers map[string]string) error {
	return f.WriteResponseWithStatus(w, req, http.StatusOK, data, headers)
}

// WriteResponseWithStatus writes data with an explicit HTTP status.
// Error payloads ride through here so a msgpack client never has to
// parse a JSON error body.
func (f *Formatter) WriteResponseWithStatus(w http.ResponseWriter, req *http.Request, status int, data any, headers map[string]string) error {
	// Set any provided headers before the status line goes out
	for k, v := range headers {
		w.Header().Set(k, v)
	}

	// Always set CORS header
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if req.URL.Query().Get("format") == "msgpack" {
		w.Header().Set("Content-Type", "application/x-msgpack")
		w.WriteHeader(status)
		encoder := msgpack.NewEncoder(w)
		encoder.SetCustomStructTag("json") // Use json tags for MessagePack
		return encoder.Encode(data)
	}

	// Default to JSON format (when no format parameter or any other value)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}
