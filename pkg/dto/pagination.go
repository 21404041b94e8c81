// Package dto provides data transfer objects for rendering pagination.
package dto

import (
	"github.com/sgaunet/paginator/pkg/paginator"
)

// PaginationInfo holds pagination metadata ready for rendering or JSON encoding.
// All page numbers are 1-indexed (first page is 1), while StartIndex and EndIndex
// are 0-indexed item positions.
type PaginationInfo struct {
	// CurrentPage is the current page number (1-indexed).
	CurrentPage int `json:"currentPage"`

	// TotalPages is the total number of pages available. It is 0 when there are no items.
	TotalPages int `json:"totalPages"`

	// TotalItems is the total number of items across all pages.
	TotalItems int `json:"totalItems"`

	// PageSize is the maximum number of items per page.
	PageSize int `json:"pageSize"`

	// HasPrevious indicates if there is a previous page available.
	HasPrevious bool `json:"hasPrevious"`

	// HasNext indicates if there is a next page available.
	HasNext bool `json:"hasNext"`

	// StartIndex is the 0-indexed position of the first item on this page.
	StartIndex int `json:"startIndex"`

	// EndIndex is the 0-indexed position (inclusive) of the last item on this page.
	// It is -1 when there are no items.
	EndIndex int `json:"endIndex"`

	// Start and End are the 1-indexed bounds shown as "items Start-End of TotalItems".
	Start int `json:"start"`
	End   int `json:"end"`

	// PreviousURL and NextURL are empty when the page does not exist.
	PreviousURL string `json:"previousUrl,omitempty"`
	NextURL     string `json:"nextUrl,omitempty"`

	// Pages is the window of page links around CurrentPage.
	Pages []paginator.Link `json:"pages"`
}

// NewPaginationInfo snapshots p, including a page-link window of the given size.
// It fails when p has an invalid page size or window is below 1.
func NewPaginationInfo(p *paginator.Paginator, window int) (PaginationInfo, error) {
	totalPages, err := p.Pages()
	if err != nil {
		return PaginationInfo{}, err
	}

	links, err := p.Links(window)
	if err != nil {
		return PaginationInfo{}, err
	}

	prev, _ := p.PreviousURL()
	next, _ := p.NextURL()

	return PaginationInfo{
		CurrentPage: p.Page(),
		TotalPages:  totalPages,
		TotalItems:  p.Total(),
		PageSize:    p.PerPage(),
		HasPrevious: p.HasPreviousPage(),
		HasNext:     p.HasNextPage(),
		StartIndex:  p.StartIndex(),
		EndIndex:    p.EndIndex(),
		Start:       p.Start(),
		End:         p.End(),
		PreviousURL: prev,
		NextURL:     next,
		Pages:       links,
	}, nil
}

// IsEmpty reports whether the paginated result set has no items.
func (i PaginationInfo) IsEmpty() bool {
	return i.TotalItems <= 0
}
