package types

import "time"

// Response is the unified envelope for every API response, success or error.
// Data is null exactly for no-content and error responses.
type Response struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data"`
}

// Meta describes the request/response pair carried by every envelope.
// Status, path, method, timestamp and requestId are always set by the
// response builder; the remaining fields are optional extras.
type Meta struct {
	Status    int       `json:"status"`
	Path      string    `json:"path"`
	Method    string    `json:"method"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"requestId,omitempty"`
	Title     string    `json:"title,omitempty"`
	Count     *int      `json:"count,omitempty"`
	Page      *int      `json:"page,omitempty"`
	PerPage   *int      `json:"perPage,omitempty"`
	Total     *int      `json:"total,omitempty"`
}

// MetaExtras carries the optional meta fields a handler may attach to a
// response. The builder merges them without touching the computed fields.
type MetaExtras struct {
	Title   string
	Count   *int
	Page    *int
	PerPage *int
	Total   *int
}

// LinkDTO is a hypermedia descriptor pointing at a single resource.
type LinkDTO struct {
	Href  string `json:"href"`
	Rel   string `json:"rel,omitempty"`
	Title string `json:"title,omitempty"`
}

// IntPtr is a small helper for filling optional numeric meta fields.
func IntPtr(v int) *int {
	return &v
}
