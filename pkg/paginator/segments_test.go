package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		counts   []int
		want     []Segment
	}{
		{
			name:     "Mixed page, folders then files",
			page:     1,
			pageSize: 50,
			counts:   []int{30, 200},
			want:     []Segment{{Offset: 0, Limit: 30}, {Offset: 0, Limit: 20}},
		},
		{
			name:     "Files only after folders are exhausted",
			page:     2,
			pageSize: 50,
			counts:   []int{30, 200},
			want:     []Segment{{}, {Offset: 20, Limit: 50}},
		},
		{
			name:     "Folders only",
			page:     2,
			pageSize: 50,
			counts:   []int{120, 0},
			want:     []Segment{{Offset: 50, Limit: 50}, {}},
		},
		{
			name:     "Partial last page",
			page:     3,
			pageSize: 50,
			counts:   []int{30, 80},
			want:     []Segment{{}, {Offset: 70, Limit: 10}},
		},
		{
			name:     "Page spanning three sources",
			page:     2,
			pageSize: 10,
			counts:   []int{8, 3, 20},
			want:     []Segment{{}, {Offset: 2, Limit: 1}, {Offset: 0, Limit: 9}},
		},
		{
			name:     "Page past the end",
			page:     9,
			pageSize: 50,
			counts:   []int{30, 80},
			want:     []Segment{{}, {}},
		},
		{
			name:     "Negative counts treated as empty",
			page:     1,
			pageSize: 10,
			counts:   []int{-4, 5},
			want:     []Segment{{}, {Offset: 0, Limit: 5}},
		},
		{
			name:     "Invalid page size",
			page:     1,
			pageSize: 0,
			counts:   []int{30, 80},
			want:     []Segment{{}, {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.page, tt.pageSize, sum(tt.counts))
			assert.Equal(t, tt.want, p.Segments(tt.counts...))
		})
	}
}

func TestSegments_CoverPageExactly(t *testing.T) {
	counts := []int{17, 0, 42, 5}
	total := sum(counts)

	for perPage := 1; perPage <= 20; perPage++ {
		p := New(1, perPage, total)
		pages, _ := p.Pages()
		for page := 1; page <= pages; page++ {
			p = New(page, perPage, total)
			got := 0
			for _, s := range p.Segments(counts...) {
				got += s.Limit
			}
			assert.Equal(t, p.End()-p.Start()+1, got, "perPage=%d page=%d", perPage, page)
		}
	}
}

func sum(counts []int) int {
	n := 0
	for _, c := range counts {
		n += max(c, 0)
	}
	return n
}
