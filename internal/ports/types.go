package ports

import "net/http"

// ResponseMeta is a simple transport object crossing the port boundary.
// It carries the response metadata of a fetch or download without exposing
// the underlying *http.Response, so doubles can fabricate it freely.
type ResponseMeta struct {
	StatusCode int         `json:"statusCode" yaml:"statusCode"`
	Headers    http.Header `json:"headers,omitempty" yaml:"headers,omitempty"`
}
