package paginator

import "fmt"

// Link is one entry of a page-number selector.
type Link struct {
	Number  int    `json:"number"`
	URL     string `json:"url"`
	Current bool   `json:"current"`
}

// PaginationRange returns up to size page numbers centered on the current page.
func (p *Paginator) PaginationRange(size int) ([]int, error) {
	return p.PaginationRangeFor(size, p.page)
}

// PaginationRangeFor returns up to size contiguous page numbers centered on page,
// clamped to [1, Pages].
//
// An underflow at the start is shifted onto the end, but the final clamp at the end
// is not shifted back onto the start: near the last page the window can be shorter
// than size while near the first page it is not. A page so far past the end that
// the window would be empty yields an empty slice.
func (p *Paginator) PaginationRangeFor(size, page int) ([]int, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRange, size)
	}
	pages, err := p.Pages()
	if err != nil {
		return nil, err
	}

	// floor((size - 0.5) / 2) for size >= 1
	radius := (size - 1) / 2
	start := page - radius
	end := page + radius

	// widen to exactly size, even sizes lean towards the end
	end += size - (end - start) - 1

	if diff := 1 - start; diff > 0 {
		end += diff
		start = 1
	}

	if end > pages {
		end = pages
	}
	if end < 1 {
		end = 1
	}

	if start > end {
		return []int{}, nil
	}
	out := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		out = append(out, n)
	}
	return out, nil
}

// Links returns the PaginationRange window around the current page as links.
// Entries whose page is out of range (the lone page 1 of an empty result set)
// carry an empty URL.
func (p *Paginator) Links(size int) ([]Link, error) {
	numbers, err := p.PaginationRange(size)
	if err != nil {
		return nil, err
	}
	links := make([]Link, len(numbers))
	for i, n := range numbers {
		u, _ := p.PageURL(n)
		links[i] = Link{
			Number:  n,
			URL:     u,
			Current: n == p.page,
		}
	}
	return links, nil
}
