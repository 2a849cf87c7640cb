package utils

import (
	"math"
	"net/http"
	"strconv"

	"github.com/kelydev/explorador/models"
)

// MaxLimit caps the page size a client may request.
const MaxLimit = 100

// GetPaginationParams parses offset and limit query parameters from a request.
// A page parameter (1 based) is honoured when offset is not given.
// Returns offset (default 0) and limit (default defaultLimit, max 100).
func GetPaginationParams(r *http.Request, defaultLimit int) (offset, limit int) {
	q := r.URL.Query()

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset, err = strconv.Atoi(q.Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
		if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 1 {
			offset = (page - 1) * limit
		}
	}
	return offset, limit
}

// Paginar returns the sub-sequence [offset, offset+limit) of lista.
func Paginar[T any](lista []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(lista) {
		return []T{}
	}
	end := offset + limit
	if end > len(lista) {
		end = len(lista)
	}
	out := make([]T, end-offset)
	copy(out, lista[offset:end])
	return out
}

// CanAdvance reports whether there is a page after the current one.
func CanAdvance(offset, limit, total int) bool {
	return offset+limit < total
}

// CanRetreat reports whether there is a page before the current one.
func CanRetreat(offset int) bool {
	return offset > 0
}

// NewPaginationMetadata computes the pagination block of a response.
func NewPaginationMetadata(total, offset, limit int) models.PaginationMetadata {
	totalPages := 0
	if total > 0 && limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	currentPage := 1
	if limit > 0 {
		currentPage = offset/limit + 1
	}
	return models.PaginationMetadata{
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		Offset:      offset,
		Limit:       limit,
		CanAdvance:  CanAdvance(offset, limit, total),
		CanRetreat:  CanRetreat(offset),
	}
}

// Paginate builds a PaginatedResponse for the current page of lista.
func Paginate[T any](lista []T, offset, limit int) models.PaginatedResponse {
	return models.PaginatedResponse{
		Data:       Paginar(lista, offset, limit),
		Pagination: NewPaginationMetadata(len(lista), offset, limit),
		Empty:      len(lista) == 0,
	}
}
