// Package models defines the JSON bodies exchanged over the HTTP API.
package models

// URLRequest is the body of POST /urls/url, each item of POST /urls/urls
// and the body of PUT /urls/urls/{id}.
type URLRequest struct {
	URL string `json:"url"`

	// CreatedBy is only read on create, UpdatedBy only on update.
	CreatedBy *string `json:"created_by,omitempty"`
	UpdatedBy *string `json:"updated_by,omitempty"`
}

// VersionResponse is returned by GET /.
type VersionResponse struct {
	Version string `json:"version"`
}

// PingResponse is returned by GET /ping.
type PingResponse struct {
	API string `json:"api"`
	Go  string `json:"go"`
	DB  string `json:"db"`
}

// ErrorResponse is the body of every JSON error.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
