package postgres

import (
	"fmt"
	"strings"

	"github.com/maxviazov/offer-catalog-service/internal/repository"
)

// whereClause accumulates predicates and their positional args.
type whereClause struct {
	conds []string
	args  []any
}

func (w *whereClause) add(format string, values ...any) {
	placeholders := make([]any, len(values))
	for i, v := range values {
		w.args = append(w.args, v)
		placeholders[i] = fmt.Sprintf("$%d", len(w.args))
	}
	w.conds = append(w.conds, fmt.Sprintf(format, placeholders...))
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, " AND ")
}

// next returns the placeholder for an argument appended after the filters.
func (w *whereClause) next(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

// escapeLike neutralizes LIKE wildcards typed by users.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func offerWhere(q repository.OfferQuery) *whereClause {
	w := &whereClause{}
	if s := strings.TrimSpace(q.NameOrISBN); s != "" {
		w.add("(o.name ILIKE %s OR o.isbn = %s)", "%"+escapeLike(s)+"%", s)
	}
	if q.VenueID != nil {
		w.add("o.venue_id = %s", *q.VenueID)
	}
	if q.OffererID != nil {
		w.add("v.offerer_id = %s", *q.OffererID)
	}
	if q.CategoryID != nil {
		w.add("o.category_id = %s", *q.CategoryID)
	}
	if q.Status != nil {
		w.add("o.status = %s", string(*q.Status))
	}
	if q.CreationMode != nil {
		w.add("o.creation_mode = %s", string(*q.CreationMode))
	}
	if q.PeriodBeginning != nil {
		w.add("o.beginning_date >= %s", *q.PeriodBeginning)
	}
	if q.PeriodEnding != nil {
		// inclusive day: everything before the next midnight
		w.add("o.beginning_date < %s", q.PeriodEnding.AddDate(0, 0, 1))
	}
	return w
}
