package pagination

// Defaults used by the offer list: ten offers per page and at most ten pages.
const (
	DefaultPerPage  = 10
	DefaultMaxPages = 10
)

// TotalPages returns how many pages totalItems fill at perPage items each.
// An empty result still has one page. A positive maxPages caps the count;
// items past the cap are never reachable.
func TotalPages(totalItems, perPage, maxPages int) int {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	pages := (totalItems + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	if maxPages > 0 && pages > maxPages {
		pages = maxPages
	}
	return pages
}

// Window converts a 1-based page into a limit/offset pair.
func Window(page, perPage int) (limit, offset int) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}
	return perPage, (page - 1) * perPage
}
