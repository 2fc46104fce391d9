// Package paginate slices in-memory lists into pages.
package paginate

// Items returns page (1-based) of items. Pages below 1 are treated as the
// first page; a perPage below 1 or a page past the end yields an empty slice.
// The result shares items' backing array.
func Items[T any](items []T, page, perPage int) []T {
	if perPage < 1 {
		return []T{}
	}
	page = max(page, 1)
	// Compare page indexes before multiplying so huge pages cannot overflow.
	if len(items) == 0 || page-1 > (len(items)-1)/perPage {
		return []T{}
	}
	start := (page - 1) * perPage
	end := start + min(perPage, len(items)-start)
	return items[start:end:end]
}

// TotalPages is the number of pages needed for total items, at least 1.
func TotalPages(total, perPage int) int {
	if perPage < 1 || total <= 0 {
		return 1
	}
	return (total-1)/perPage + 1
}

// Window returns up to size page numbers centred on current, clamped to
// [1, total], for rendering a page selector.
func Window(current, total, size int) []int {
	if total < 1 || size < 1 {
		return nil
	}
	current = min(max(current, 1), total)
	size = min(size, total)

	start := current - size/2
	start = max(start, 1)
	start = min(start, total-size+1)

	pages := make([]int, size)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}
