package util

import "strconv"

// Page describes one page of an ordered result set.
type Page struct {
	Number  int  `json:"page"`
	Size    int  `json:"page_size"`
	Total   int  `json:"total"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// ParsePage coerces an untrusted page query parameter to a 1-based page
// number. Missing, non-integer and non-positive values all default to 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns the 1-based page of size from an ordered slice.
// Out-of-range pages yield an empty slice, never an error.
func Paginate[T any](seq []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		return nil
	}
	// compare against the page count first; (page-1)*size can overflow
	// for untrusted page numbers
	lastPage := (len(seq) + size - 1) / size
	if page > lastPage {
		return []T{}
	}
	start := (page - 1) * size
	end := start + size
	if end > len(seq) {
		end = len(seq)
	}
	return seq[start:end]
}

// HasNext reports whether there are items beyond the given page.
func HasNext(total, page, size int) bool {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		return false
	}
	// page*size overflows for huge pages; compare page numbers instead
	lastPage := (total + size - 1) / size
	return page < lastPage
}

// HasPrev reports whether the given page has a predecessor.
func HasPrev(page int) bool {
	return page > 1
}

// PageOf slices seq and bundles the page bookkeeping used by list endpoints.
func PageOf[T any](seq []T, page, size int) ([]T, Page) {
	if page < 1 {
		page = 1
	}
	items := Paginate(seq, page, size)
	return items, Page{
		Number:  page,
		Size:    size,
		Total:   len(seq),
		HasNext: HasNext(len(seq), page, size),
		HasPrev: HasPrev(page),
	}
}
