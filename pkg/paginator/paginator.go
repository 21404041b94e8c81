// Package paginator computes page boundaries, navigation links and page-number windows
// from the current page, the page size and the total number of items.
//
// Page numbers are 1-indexed. Item indices are 0-indexed.
package paginator

import (
	"fmt"
	"net/url"
)

// DefaultPageParameter is the query-parameter key used for the page number.
const DefaultPageParameter = "page"

// RequestContext exposes the current request to a Paginator that was not given a base URL.
type RequestContext interface {
	Path() string
	QueryParameters() map[string]string
}

// Paginator holds the pagination state of one request.
// It is never mutated after New returns, so it can be read concurrently.
type Paginator struct {
	page          int
	perPage       int
	total         int
	baseURL       string
	pageParameter string
}

// Option configures a Paginator at construction time.
type Option func(*options)

type options struct {
	baseURL       string
	pageParameter string
	request       RequestContext
}

// WithBaseURL sets the URL the page parameter is appended to.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithPageParameter overrides the page query-parameter key. An empty name keeps the default.
func WithPageParameter(name string) Option {
	return func(o *options) {
		if name != "" {
			o.pageParameter = name
		}
	}
}

// WithRequest injects the current request. It is only read when no base URL is given.
func WithRequest(req RequestContext) Option {
	return func(o *options) {
		o.request = req
	}
}

// New creates a Paginator. A page lower than 1 is treated as page 1.
// perPage is not validated here; see Verify and IsValidPerPage.
func New(page, perPage, total int, opts ...Option) *Paginator {
	o := options{pageParameter: DefaultPageParameter}
	for _, opt := range opts {
		opt(&o)
	}

	if page < 1 {
		page = 1
	}

	baseURL := o.baseURL
	if baseURL == "" && o.request != nil {
		baseURL = baseURLFromRequest(o.request, o.pageParameter)
	}

	return &Paginator{
		page:          page,
		perPage:       perPage,
		total:         total,
		baseURL:       baseURL,
		pageParameter: o.pageParameter,
	}
}

// baseURLFromRequest rebuilds path?query from the request with the page parameter removed.
func baseURLFromRequest(req RequestContext, pageParameter string) string {
	values := url.Values{}
	for k, v := range req.QueryParameters() {
		if k == pageParameter {
			continue
		}
		values.Set(k, v)
	}
	return req.Path() + "?" + values.Encode()
}

// Page returns the current page number.
func (p *Paginator) Page() int {
	return p.page
}

// PerPage returns the number of items per page.
func (p *Paginator) PerPage() int {
	return p.perPage
}

// Total returns the number of items across all pages.
func (p *Paginator) Total() int {
	return p.total
}

// BaseURL returns the URL navigation links are built from.
func (p *Paginator) BaseURL() string {
	return p.baseURL
}

// PageParameter returns the query-parameter key used for the page number.
func (p *Paginator) PageParameter() string {
	return p.pageParameter
}

// StartIndex returns the 0-indexed position of the first item on the current page.
// It is not clamped and may exceed Total for an out-of-range page.
func (p *Paginator) StartIndex() int {
	return (p.page - 1) * p.perPage
}

// Start is StartIndex as a 1-indexed display value.
func (p *Paginator) Start() int {
	return p.StartIndex() + 1
}

// LastIndex returns the 0-indexed position of the last item overall, -1 when there are none.
func (p *Paginator) LastIndex() int {
	return p.total - 1
}

// EndIndex returns the 0-indexed position of the last item on the current page.
func (p *Paginator) EndIndex() int {
	return min(p.perPage*p.page-1, p.LastIndex())
}

// End is EndIndex as a 1-indexed display value.
func (p *Paginator) End() int {
	return p.EndIndex() + 1
}

// Pages returns the number of pages. It fails with ErrInvalidPerPage when perPage < 1.
func (p *Paginator) Pages() (int, error) {
	if !ValidPerPage(p.perPage) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPerPage, p.perPage)
	}
	if p.total <= 0 {
		return 0, nil
	}
	return (p.total + p.perPage - 1) / p.perPage, nil
}

// HasNextPage reports whether the current page stops before the last item.
// The check is index based: an out-of-range page whose window still misses
// LastIndex reports true.
func (p *Paginator) HasNextPage() bool {
	return p.EndIndex() != p.LastIndex()
}

// HasPreviousPage reports whether the current page is past the first one.
func (p *Paginator) HasPreviousPage() bool {
	return p.page > 1
}

// NextPage returns the following page number, if any.
func (p *Paginator) NextPage() (int, bool) {
	if !p.HasNextPage() {
		return 0, false
	}
	return p.page + 1, true
}

// PreviousPage returns the preceding page number, if any.
func (p *Paginator) PreviousPage() (int, bool) {
	if !p.HasPreviousPage() {
		return 0, false
	}
	return p.page - 1, true
}
