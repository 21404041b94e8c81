package paginator

// Segment is the part of one source that falls on the current page, as a limit/offset window.
type Segment struct {
	Offset int
	Limit  int
}

// Segments splits the current page across sources listed one after the other,
// for example folders first and files after them. counts holds the size of each
// source in display order. The result has one Segment per source; sources the page
// does not reach get a zero Limit.
//
// Example with 30 folders, 200 files and 50 items per page:
//   - page 1: folders {Offset: 0, Limit: 30}, files {Offset: 0, Limit: 20}
//   - page 2: folders {Limit: 0}, files {Offset: 20, Limit: 50}
func (p *Paginator) Segments(counts ...int) []Segment {
	segments := make([]Segment, len(counts))
	if !p.IsValidPerPage() {
		return segments
	}

	// [first, last) in the concatenated listing
	first := p.StartIndex()
	last := first + p.perPage

	base := 0
	for i, count := range counts {
		count = max(count, 0)
		lo := max(first, base)
		hi := min(last, base+count)
		if lo < hi {
			segments[i] = Segment{Offset: lo - base, Limit: hi - lo}
		}
		base += count
	}
	return segments
}
