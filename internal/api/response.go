// Package api defines response types shared across HTTP handlers.
package api

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
