// Package pagination computes the compact page strip ("1 … 4 5 6 … 20")
// rendered under paginated offer lists, plus the small amount of arithmetic
// around it: page counts, limit/offset windows and previous/next links.
package pagination

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// EllipsisToken is the wire and display form of an elided page range.
const EllipsisToken = "..."

// Entry is one slot of a page strip: either a page number or the ellipsis marker.
// The zero value is not a valid entry; build entries with Page or use Ellipsis.
type Entry struct {
	page     int
	ellipsis bool
}

// Ellipsis stands for at least two hidden pages.
var Ellipsis = Entry{ellipsis: true}

// Page returns an entry pointing at page n.
func Page(n int) Entry { return Entry{page: n} }

func (e Entry) IsEllipsis() bool { return e.ellipsis }

// Number returns the page number, or 0 for the ellipsis marker.
func (e Entry) Number() int {
	if e.ellipsis {
		return 0
	}
	return e.page
}

func (e Entry) String() string {
	if e.ellipsis {
		return EllipsisToken
	}
	return strconv.Itoa(e.page)
}

// MarshalJSON encodes a page as a bare number and the marker as "...".
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.ellipsis {
		return []byte(`"` + EllipsisToken + `"`), nil
	}
	return []byte(strconv.Itoa(e.page)), nil
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != EllipsisToken {
			return fmt.Errorf("pagination: unexpected entry token %q", s)
		}
		*e = Ellipsis
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("pagination: entry must be a number or %q: %w", EllipsisToken, err)
	}
	*e = Page(n)
	return nil
}
