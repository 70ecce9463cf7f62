package appwrite

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx answer from the document store.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Code       int    `json:"code"`
	Type       string `json:"type"`
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("appwrite returned status %d (%s): %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("appwrite returned status %d: %s", e.StatusCode, e.Message)
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	apiErr.StatusCode = status
	return apiErr
}
