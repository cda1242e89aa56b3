// Package models defines request and response types for the ZoneKeeper REST
// API. All types are JSON-serializable.
package models

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse represents a simple status response.
type StatusResponse struct {
	Status string `json:"status"`
}

// ValidationErrorResponse carries the full list of record-set problems. The
// order is stable: types in A, AAAA, MX, CNAME, TXT-family order, records by
// index within a type.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
