package api

import "fmt"

// Error is the JSON body of every failed /api request - `{"error": "Not Found"}`
type Error struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error: message=%s", e.Message)
	}
	return fmt.Sprintf("api error: code=%s, message=%s", e.Code, e.Message)
}
