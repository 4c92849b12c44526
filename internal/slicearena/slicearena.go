// Package slicearena implements the page-backed arena for variable-length
// move and outcome lists. It is tuned for many small slices of the same
// element type: each page holds several slices contiguously, and a handle
// encodes (page index, start offset, length) so slices never straddle a
// page boundary.
package slicearena

// minPageElems bounds every page to at least this many elements, which
// keeps a page in the neighborhood of a 4 KiB allocation for typical move
// record sizes without pulling in runtime/memory-page introspection.
const minPageElems = 512

// Handle identifies a contiguous run within exactly one page.
type Handle struct {
	page   int
	start  int
	length int
}

// Invalid is the sentinel handle (page -1, unlike the zero Handle, which
// names page 0); Get on it always returns (nil, false).
var Invalid = Handle{page: -1}

// IsValid reports whether h is not the Invalid sentinel. It does not detect
// handles issued before a Clear.
func (h Handle) IsValid() bool { return h.page >= 0 }

// Len reports the number of elements referenced by h.
func (h Handle) Len() int { return h.length }

type page[T any] struct {
	data []T
}

// Arena allocates append-only slices of T behind stable handles.
type Arena[T any] struct {
	pages []*page[T]
}

// New creates an empty slice arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert copies items into the arena and returns a handle to the stored
// slice. If the current (last) page has room, items are appended there in
// place; otherwise a new page sized to fit items (or minPageElems, whichever
// is larger) is allocated.
func (a *Arena[T]) Insert(items []T) Handle {
	if len(a.pages) > 0 {
		last := a.pages[len(a.pages)-1]
		if cap(last.data)-len(last.data) >= len(items) {
			start := len(last.data)
			last.data = append(last.data, items...)
			return Handle{page: len(a.pages) - 1, start: start, length: len(items)}
		}
	}

	size := minPageElems
	if len(items) > size {
		size = len(items)
	}
	p := &page[T]{data: make([]T, 0, size)}
	p.data = append(p.data, items...)
	a.pages = append(a.pages, p)
	return Handle{page: len(a.pages) - 1, start: 0, length: len(items)}
}

// Get returns the slice referenced by h. The returned slice shares backing
// storage with the arena and is only valid until the next Clear.
func (a *Arena[T]) Get(h Handle) ([]T, bool) {
	if !h.IsValid() || h.page >= len(a.pages) {
		return nil, false
	}
	p := a.pages[h.page]
	if h.start < 0 || h.start+h.length > len(p.data) {
		return nil, false
	}
	return p.data[h.start : h.start+h.length : h.start+h.length], true
}

// Clear truncates every page to length zero, retaining their capacity.
// Every handle issued before Clear becomes invalid.
func (a *Arena[T]) Clear() {
	for _, p := range a.pages {
		p.data = p.data[:0]
	}
}

// PageCount reports how many pages currently back the arena. It exists
// primarily to make page-placement behavior observable in tests.
func (a *Arena[T]) PageCount() int { return len(a.pages) }
