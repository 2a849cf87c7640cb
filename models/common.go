package models

// PaginationMetadata holds information about the pagination state.
type PaginationMetadata struct {
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	Offset      int  `json:"offset"`
	Limit       int  `json:"limit"`
	CanAdvance  bool `json:"canGoNext"`
	CanRetreat  bool `json:"canGoPrevious"`
}

// PaginatedResponse is a generic wrapper for paginated page responses.
// Data holds the current page slice; Extra carries page specific aggregates
// (available filters, totals, summaries).
type PaginatedResponse struct {
	Data         interface{}        `json:"data"`
	Pagination   PaginationMetadata `json:"pagination"`
	Extra        interface{}        `json:"extra,omitempty"`
	Empty        bool               `json:"vacio"`
	ErrorMessage string             `json:"errorMessage,omitempty"`
}

// DetailResponse wraps a single entity for detail pages. Data is null when the
// entity was not found or could not be loaded.
type DetailResponse struct {
	Data         interface{} `json:"data"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
}
