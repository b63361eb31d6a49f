package repository

// Page represents a simple limit/offset window for listing operations.
// I keep it intentionally small; page numbers belong to higher layers.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries a slice of items and the total count matching the query.
// I return the total so callers can size the page strip without an extra round trip.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
