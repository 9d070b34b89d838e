// Package pagination implements the page/limit/search/sortBy contract shared by list endpoints.
package pagination

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidRequest marks page parameters the client must correct.
var ErrInvalidRequest = errors.New("invalid page request")

// LimitPolicy decides how an omitted limit is treated.
type LimitPolicy int

const (
	// LimitDefault falls back to Config.DefaultLimit when limit is omitted.
	LimitDefault LimitPolicy = iota
	// LimitRequired rejects requests that omit limit.
	LimitRequired
)

// PageRequest represents a client request for a page of data with optional search and sorting.
type PageRequest struct {
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
	Search *string `json:"search,omitempty"`
	SortBy string  `json:"sortBy,omitempty"`
}

// Normalize clamps the request into the range allowed by cfg.
// A page below 1 becomes 1, a limit below 1 takes the default, and
// a limit above the maximum is capped. A page whose offset would overflow
// int is pulled back to the last page that still fits.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = cfg.DefaultLimit
	}
	if r.Limit > cfg.MaxLimit {
		r.Limit = cfg.MaxLimit
	}
	if r.Limit > 0 && r.Page-1 > math.MaxInt/r.Limit {
		r.Page = math.MaxInt/r.Limit + 1
	}
}

// Offset calculates the number of records to skip based on page and limit.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// PageRequestFromQuery parses page, limit, search and sortBy from URL query values.
// Malformed or non-positive page and limit values are rejected rather than coerced.
func PageRequestFromQuery(values url.Values, cfg Config, policy LimitPolicy) (PageRequest, error) {
	req := PageRequest{
		Page:   1,
		SortBy: strings.TrimSpace(values.Get("sortBy")),
	}

	if raw := values.Get("page"); raw != "" {
		page, err := parsePositive("page", raw)
		if err != nil {
			return req, err
		}
		req.Page = page
	}

	raw, present := lookup(values, "limit")
	switch {
	case present:
		limit, err := parsePositive("limit", raw)
		if err != nil {
			return req, err
		}
		req.Limit = limit
	case policy == LimitRequired:
		return req, fmt.Errorf("%w: limit is required", ErrInvalidRequest)
	}

	if s := values.Get("search"); s != "" {
		req.Search = &s
	}

	requested := req.Page
	req.Normalize(cfg)
	if req.Page != requested {
		return req, fmt.Errorf("%w: page %d is out of range", ErrInvalidRequest, requested)
	}
	return req, nil
}

// PageResult holds a page of data along with pagination metadata.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPageResult creates a PageResult with calculated total pages.
// An empty match set reports zero pages.
func NewPageResult[T any](data []T, total, page, limit int) PageResult[T] {
	totalPages := 0
	if limit > 0 {
		totalPages = total / limit
		if total%limit != 0 {
			totalPages++
		}
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

func lookup(values url.Values, key string) (string, bool) {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

func parsePositive(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidRequest, name)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidRequest, name)
	}
	return n, nil
}
