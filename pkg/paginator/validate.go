package paginator

import "fmt"

// ValidPerPage reports whether perPage can be used to split items into pages.
func ValidPerPage(perPage int) bool {
	return perPage >= 1
}

// IsValidPerPage reports whether the Paginator's own perPage is usable.
func (p *Paginator) IsValidPerPage() bool {
	return ValidPerPage(p.perPage)
}

// IsValidPage reports whether page lies within [1, Pages].
// It is always false when perPage is invalid.
func (p *Paginator) IsValidPage(page int) bool {
	pages, err := p.Pages()
	if err != nil {
		return false
	}
	return page >= 1 && page <= pages
}

// IsValid reports whether the current page lies within [1, Pages].
func (p *Paginator) IsValid() bool {
	return p.IsValidPage(p.page)
}

// Verify turns a failed validation into an error wrapping ErrPagination.
// perPage is checked first since page validity depends on it.
// Nothing calls Verify implicitly.
func (p *Paginator) Verify() error {
	if !p.IsValidPerPage() {
		return fmt.Errorf("%w: %d", ErrInvalidPerPage, p.perPage)
	}
	if !p.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidPage, p.page)
	}
	return nil
}
