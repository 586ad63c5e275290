package models

import (
	"net/url"
	"strconv"
)

// Pagination defaults and cap. The limit cap bounds the cost of a single
// list query; out-of-range values are clamped silently.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is a validated pagination window.
type PageRequest struct {
	Page  int
	Limit int
}

// Skip returns the number of documents to skip for this window.
func (p PageRequest) Skip() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageRequest reads page/limit from query parameters, falling back to
// defaults when absent or not parsing to a positive integer.
func ParsePageRequest(query url.Values) PageRequest {
	page := parsePositiveInt(query.Get("page"), DefaultPage)
	limit := parsePositiveInt(query.Get("limit"), DefaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

func parsePositiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Pagination is the metadata attached to a page of results.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	Limit       int  `json:"limit"`
	TotalCount  int  `json:"totalCount"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
}

// NewPagination derives the full metadata for a window over totalCount
// documents. totalPages is ceil(totalCount/limit).
func NewPagination(page, limit, totalCount int) Pagination {
	totalPages := (totalCount + limit - 1) / limit

	p := Pagination{
		CurrentPage: page,
		Limit:       limit,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
	if p.HasNext {
		next := page + 1
		p.NextPage = &next
	}
	if p.HasPrev {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}

// Page is one window of results plus its pagination metadata.
type Page[T any] struct {
	Results    []T        `json:"results"`
	Pagination Pagination `json:"pagination"`
}
