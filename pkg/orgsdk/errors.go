package orgsdk

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	// HTTPStatus is the response status code. It can differ from StatusCode
	// in the body only if the server misbehaves.
	HTTPStatus int `json:"-"`

	Status     string              `json:"status"`
	Message    string              `json:"message"`
	Errors     map[string][]string `json:"errors,omitempty"`
	StatusCode int                 `json:"statusCode"`

	// Body is set when the response was not an envelope, for example the
	// unknown route response.
	Body string `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("orgs api: http %d: %s", e.HTTPStatus, e.Body)
	}
	if len(e.Errors) > 0 {
		return fmt.Sprintf("orgs api: %d %s: %s %v", e.HTTPStatus, e.Status, e.Message, e.Errors)
	}
	return fmt.Sprintf("orgs api: %d %s: %s", e.HTTPStatus, e.Status, e.Message)
}

// HasFieldError reports whether field has at least one message.
func (e *APIError) HasFieldError(field string) bool {
	return len(e.Errors[field]) > 0
}

func parseErrorResponse(status int, body []byte) error {
	apiErr := &APIError{HTTPStatus: status}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Status == "" {
		var nf NotFoundResponse
		if json.Unmarshal(body, &nf) == nil && nf.Error != "" {
			apiErr.Message = nf.Error
		}
		apiErr.Body = string(body)
	}
	return apiErr
}
