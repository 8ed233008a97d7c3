package api

import (
	"encoding/json"
	"net/http"
)

// GenericBackendMessage is shown when the backend fails without a usable
// structured payload.
const GenericBackendMessage = "Something went wrong. Check that the backend is running, reachable and returns valid JSON."

// BackendError is a non-2xx response from the backend. Message carries the
// payload's message field when the backend sent one, otherwise the generic
// fallback; callers surface it verbatim to the notification sink.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return e.Message
}

// failurePayload is the loose error shape the backend uses. The message
// field is sometimes absent, so it stays optional here.
type failurePayload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeError(resp *http.Response) error {
	be := &BackendError{StatusCode: resp.StatusCode, Message: GenericBackendMessage}
	var p failurePayload
	if err := json.NewDecoder(resp.Body).Decode(&p); err == nil && p.Message != "" {
		be.Message = p.Message
	}
	return be
}
