package pagination

import "fmt"

// Strip is a page strip plus the navigation state around it.
// Previous and Next are 0 when there is no such page.
type Strip struct {
	Entries     []Entry `json:"pages"`
	Current     int     `json:"current_page"`
	Total       int     `json:"total_pages"`
	HasPrevious bool    `json:"has_previous"`
	HasNext     bool    `json:"has_next"`
	Previous    int     `json:"previous_page,omitempty"`
	Next        int     `json:"next_page,omitempty"`
}

// NewStrip clamps current into [1, total] before building the strip, so
// a stale page query parameter still lands on a real page.
func NewStrip(current, total int) Strip {
	if total < 1 {
		total = 1
	}
	current = Clamp(current, total)

	s := Strip{
		Entries:     Pages(current, total),
		Current:     current,
		Total:       total,
		HasPrevious: current > 1,
		HasNext:     current < total,
	}
	if s.HasPrevious {
		s.Previous = current - 1
	}
	if s.HasNext {
		s.Next = current + 1
	}
	return s
}

// Label is the "Page 2/10" caption shown next to the arrows.
func (s Strip) Label() string {
	return fmt.Sprintf("Page %d/%d", s.Current, s.Total)
}

// Clamp forces page into [1, total].
func Clamp(page, total int) int {
	if total < 1 {
		total = 1
	}
	switch {
	case page < 1:
		return 1
	case page > total:
		return total
	default:
		return page
	}
}
