package paginator

import (
	"errors"
	"fmt"
)

// Package-level error definitions.
var (
	// ErrPagination is the kind shared by every validation failure raised by Verify.
	ErrPagination = errors.New("pagination error")

	// ErrInvalidPage is returned when the page number is below 1 or past the last page.
	ErrInvalidPage = fmt.Errorf("%w: invalid page number", ErrPagination)

	// ErrInvalidPerPage is returned when the number of records per page is below 1.
	ErrInvalidPerPage = fmt.Errorf("%w: invalid number of records per page", ErrPagination)

	// ErrInvalidRange is returned when a page-number window smaller than 1 is requested.
	ErrInvalidRange = errors.New("invalid pagination range size")
)
