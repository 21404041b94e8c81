package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sgaunet/paginator/pkg/paginator"
)

var (
	// ErrInvalidPageFormat is returned when the page parameter cannot be parsed as a number.
	ErrInvalidPageFormat = errors.New("invalid page parameter: must be a number")

	// ErrInvalidPageValue is returned when the page parameter is less than 1.
	ErrInvalidPageValue = errors.New("invalid page parameter: must be >= 1")
)

// requestContext exposes an *http.Request as a paginator.RequestContext.
type requestContext struct {
	r *http.Request
}

// NewRequestContext wraps r so a Paginator can derive its base URL from it.
func NewRequestContext(r *http.Request) paginator.RequestContext {
	return requestContext{r: r}
}

// Path returns the escaped request path, without the query string.
func (c requestContext) Path() string {
	return c.r.URL.EscapedPath()
}

// QueryParameters returns the first value of every query parameter.
func (c requestContext) QueryParameters() map[string]string {
	query := c.r.URL.Query()
	params := make(map[string]string, len(query))
	for k, v := range query {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

// ParsePaginationParams extracts and validates the page number from HTTP request query parameters.
// It returns the page number (1-indexed) or an error if parsing fails.
//
// Behavior:
//   - Missing parameter: Returns page=1, no error
//   - Empty parameter: Returns page=1, no error
//   - Valid number >= 1: Returns the number, no error
//   - Invalid format (non-numeric): Returns 0, error
//   - Number < 1: Returns 0, error
func ParsePaginationParams(r *http.Request, name string) (int, error) {
	pageStr := r.URL.Query().Get(name)

	// Default to page 1 if not specified
	if pageStr == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPageFormat, err)
	}

	if page < 1 {
		return 0, ErrInvalidPageValue
	}

	return page, nil
}

// ParsePerPageParam reads the page size from the request.
// Missing, non-numeric or non-positive values fall back to def; larger values are capped at maxPerPage.
func ParsePerPageParam(r *http.Request, name string, def, maxPerPage int) int {
	perPage := def
	if s := r.URL.Query().Get(name); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && paginator.ValidPerPage(parsed) {
			perPage = parsed
		}
	}
	return min(perPage, maxPerPage)
}

// ValidatePageNumber ensures a page number is within valid bounds.
// It returns a safe page number, auto-correcting out-of-bounds values to 1.
//
// Use cases:
//   - Before redirects: Ensures users don't land on invalid pages
//   - After counting: Validates against actual data bounds
func ValidatePageNumber(page, maxPages int) int {
	if page < 1 || page > maxPages {
		return 1
	}
	return page
}
