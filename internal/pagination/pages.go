package pagination

// Pages builds the ordered strip for currentPage out of totalPages.
//
// Page 1 always comes first and totalPages last. Between them sits the window
// of pages adjacent to currentPage. A gap between the window and either end is
// shown as an ellipsis when it hides two pages or more; a gap of exactly one
// page shows that page instead. Up to three pages are listed in full.
//
// Inputs are expected in 1 <= currentPage <= totalPages. Anything else still
// returns a strip starting with page 1 and never panics.
func Pages(currentPage, totalPages int) []Entry {
	if totalPages <= 3 {
		entries := []Entry{Page(1)}
		for p := 2; p <= totalPages; p++ {
			entries = append(entries, Page(p))
		}
		return entries
	}

	window := make([]int, 0, 3)
	for _, p := range []int{currentPage - 1, currentPage, currentPage + 1} {
		if p > 1 && p < totalPages {
			window = append(window, p)
		}
	}

	entries := make([]Entry, 0, len(window)+4)
	entries = append(entries, Page(1))
	if len(window) == 0 {
		// currentPage is out of range: nothing to centre on.
		entries = appendGap(entries, 1, totalPages)
		return append(entries, Page(totalPages))
	}

	first, last := window[0], window[len(window)-1]
	entries = appendGap(entries, 1, first)
	for _, p := range window {
		entries = append(entries, Page(p))
	}
	entries = appendGap(entries, last, totalPages)
	return append(entries, Page(totalPages))
}

// appendGap fills the pages strictly between from and to.
func appendGap(entries []Entry, from, to int) []Entry {
	switch hidden := to - from - 1; {
	case hidden >= 2:
		return append(entries, Ellipsis)
	case hidden == 1:
		return append(entries, Page(from+1))
	default:
		return entries
	}
}
