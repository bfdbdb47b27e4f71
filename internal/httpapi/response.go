package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeNotFound         = "not_found"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeServerError      = "server_error"
)

var internalErrorBody = []byte(`{"error":"internal server error","code":"server_error"}` + "\n")

// JSON writes a JSON response with provided status code. The payload is
// encoded before anything is written; on failure nothing reaches w and the
// caller decides how to answer.
func JSON(w http.ResponseWriter, status int, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
	return nil
}

// ErrorResponse standard error envelope.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Error writes an error response.
func Error(w http.ResponseWriter, status int, code string, message string, details map[string]any) {
	err := JSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(internalErrorBody)
	}
}

// InternalError writes the generic 500 envelope. Only the request id is
// exposed to the caller.
func InternalError(w http.ResponseWriter, requestID string) {
	var details map[string]any
	if requestID != "" {
		details = map[string]any{"request_id": requestID}
	}
	Error(w, http.StatusInternalServerError, CodeServerError, "internal server error", details)
}

// NotFound answers requests for unregistered paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Error(w, http.StatusNotFound, CodeNotFound, "not found", nil)
}

// AllowedMethods lists the methods every registered route accepts.
const AllowedMethods = "GET, HEAD"

// MethodNotAllowed answers requests for a known path with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", AllowedMethods)
	Error(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed", nil)
}
