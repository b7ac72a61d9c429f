// Package httputil centralizes JSON response writing and request decoding so
// every handler renders the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	dErrors "medcalc/pkg/domain-errors"
)

// maxBodyBytes bounds request bodies; parameter mappings are small.
const maxBodyBytes = 1 << 20

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorResponse is the uniform JSON error envelope.
type ErrorResponse struct {
	Error            string         `json:"error"`
	ErrorDescription string         `json:"error_description,omitempty"`
	Details          map[string]any `json:"details,omitempty"`
}

// WriteError translates a domain error into the JSON error envelope. Internal
// errors deliberately omit the description and details so implementation
// detail never leaks to callers; the handler is expected to have logged the
// full error server-side already.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	message := ""
	var details map[string]any

	var de *dErrors.Error
	if errors.As(err, &de) {
		code = de.Code
		message = de.Message
		details = de.Details
	}

	resp := ErrorResponse{Error: string(code)}
	if code != dErrors.CodeInternal {
		resp.ErrorDescription = message
		resp.Details = details
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), resp)
}

// DecodeJSON decodes the request body into v, returning a bad_request error
// for anything the decoder rejects.
func DecodeJSON(r *http.Request, v any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer func() { _, _ = io.Copy(io.Discard, body) }()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "request body must be a JSON object")
	}
	return nil
}
