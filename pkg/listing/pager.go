package listing

import "fmt"

// TotalPages returns max(1, ceil(totalItems/pageSize)).
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if totalItems <= 0 {
		return 1
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Paginate slices recs into the display page [ (page-1)*size, page*size ).
// page is clamped into [1, TotalPages] first.
func Paginate[T any](recs []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(recs)
	totalPages := TotalPages(total, pageSize)
	page = clamp(page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]T, 0, end-start)
	items = append(items, recs[start:end]...)

	return Page[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// Window is the current page and page size of a screen.
type Window struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewWindow returns a window on page 1.
func NewWindow(pageSize int) Window {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Window{Page: 1, PageSize: pageSize}
}

// Clamp moves the page into range for totalItems.
func (w Window) Clamp(totalItems int) Window {
	if w.PageSize <= 0 {
		w.PageSize = DefaultPageSize
	}
	w.Page = clamp(w.Page, TotalPages(totalItems, w.PageSize))
	return w
}

// Next advances one page; a no-op on the last page.
func (w Window) Next(totalItems int) Window {
	w.Page++
	return w.Clamp(totalItems)
}

// Prev goes back one page; a no-op on page 1.
func (w Window) Prev() Window {
	if w.Page > 1 {
		w.Page--
	} else {
		w.Page = 1
	}
	return w
}

// GoTo jumps to page n, clamped into range.
func (w Window) GoTo(n, totalItems int) Window {
	w.Page = n
	return w.Clamp(totalItems)
}

// Reset returns to page 1.
func (w Window) Reset() Window {
	w.Page = 1
	return w
}

// Resize changes the page size and resets to page 1. allowed, when
// non-empty, restricts the sizes that may be picked.
func (w Window) Resize(size int, allowed []int) (Window, error) {
	if size <= 0 {
		return w, fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
	}
	if len(allowed) > 0 {
		ok := false
		for _, a := range allowed {
			if a == size {
				ok = true
				break
			}
		}
		if !ok {
			return w, fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
		}
	}
	return Window{Page: 1, PageSize: size}, nil
}

// Links returns the page numbers to render as navigation links: the first
// and last page plus the neighbours of the current one. Gaps are marked 0.
func (w Window) Links(totalItems int) []int {
	w = w.Clamp(totalItems)
	last := TotalPages(totalItems, w.PageSize)

	var links []int
	prev := 0
	for p := 1; p <= last; p++ {
		if p != 1 && p != last && (p < w.Page-1 || p > w.Page+1) {
			continue
		}
		if prev != 0 && p-prev > 1 {
			links = append(links, 0)
		}
		links = append(links, p)
		prev = p
	}
	return links
}

func clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
