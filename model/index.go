package model

// PageSize is the fixed number of items per paginated response.
const PageSize = 30

// PagedResponse is the list envelope shared by all catalog listings. The
// field casing matches the public API contract consumed by the website.
type PagedResponse struct {
	Hits        any   `json:"hits"`
	Page        int   `json:"Page"`
	TotalItem   int64 `json:"totalItem"`
	TotalPages  int   `json:"totalPages"`
	ItemPerPage int   `json:"ItemPerPage"`
}
