// Package app builds paginators from incoming HTTP requests.
package app

import (
	"log/slog"
	"net/http"

	"github.com/sgaunet/paginator/pkg/config"
	"github.com/sgaunet/paginator/pkg/dto"
	"github.com/sgaunet/paginator/pkg/paginator"
)

// Resolver turns a request and an item count into a Paginator using the configured defaults.
type Resolver struct {
	cfg config.Pagination
	log *slog.Logger
}

// NewResolver creates a new Resolver.
// By default the logger discards everything.
func NewResolver(cfg config.Pagination) *Resolver {
	return &Resolver{
		cfg: cfg,
		log: slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the logger
func (s *Resolver) SetLogger(log *slog.Logger) {
	s.log = log
}

// Resolve builds the Paginator for r. A malformed page parameter is reported as an
// error so the caller can redirect; the page size silently falls back to the default.
func (s *Resolver) Resolve(r *http.Request, total int) (*paginator.Paginator, error) {
	page, err := ParsePaginationParams(r, s.cfg.PageParameter)
	if err != nil {
		s.log.Warn("Invalid page parameter",
			slog.String("parameter", s.cfg.PageParameter),
			slog.String("error", err.Error()))
		return nil, err
	}

	perPage := ParsePerPageParam(r, s.cfg.PerPageParameter, s.cfg.DefaultPerPage, s.cfg.MaxPerPage)
	s.log.Debug("Resolved pagination",
		slog.Int("page", page),
		slog.Int("perPage", perPage),
		slog.Int("total", total))

	return paginator.New(page, perPage, total,
		paginator.WithPageParameter(s.cfg.PageParameter),
		paginator.WithRequest(NewRequestContext(r)),
	), nil
}

// Info resolves r and snapshots the result with the configured window.
// Out-of-range pages are not an error here; use Paginator.Verify for that.
func (s *Resolver) Info(r *http.Request, total int) (dto.PaginationInfo, error) {
	p, err := s.Resolve(r, total)
	if err != nil {
		return dto.PaginationInfo{}, err
	}
	if !p.IsValid() {
		s.log.Debug("Page out of bounds", slog.Int("requested", p.Page()))
	}
	return dto.NewPaginationInfo(p, s.cfg.Window)
}
