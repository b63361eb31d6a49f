// Package query translates offer list filters to and from the URL query string.
//
// URLs use the localized keys the back office has always exposed (lieu,
// statut, ...). Default values are never written out, so the bare list URL
// means "page 1, no filter" and shared links stay short.
package query

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// All is the sentinel for "no filter" on select-style filters.
const All = "all"

// DefaultPage is the page the list opens on.
const DefaultPage = 1

// URL keys.
const (
	KeyName                = "nom"
	KeyVenue               = "lieu"
	KeyOfferer             = "structure"
	KeyCategory            = "categorie"
	KeyStatus              = "statut"
	KeyCreationMode        = "creation"
	KeyPeriodBeginningDate = "periode-evenement-debut"
	KeyPeriodEndingDate    = "periode-evenement-fin"
	KeyPage                = "page"
)

const dateLayout = "2006-01-02"

const idMessage = "must be \"" + All + "\" or a numeric id"

// OfferFilters is the full search state of the offer list.
type OfferFilters struct {
	Name                string `query:"nom" json:"nom" validate:"max=140"`
	VenueID             string `query:"lieu" json:"lieu" validate:"eq=all|number"`
	OffererID           string `query:"structure" json:"structure" validate:"eq=all|number"`
	CategoryID          string `query:"categorie" json:"categorie" validate:"max=64"`
	Status              string `query:"statut" json:"statut" validate:"oneof=all active inactive sold_out expired pending rejected draft"`
	CreationMode        string `query:"creation" json:"creation" validate:"oneof=all manual imported"`
	PeriodBeginningDate string `query:"periode-evenement-debut" json:"periode-evenement-debut" validate:"omitempty,datetime=2006-01-02"`
	PeriodEndingDate    string `query:"periode-evenement-fin" json:"periode-evenement-fin" validate:"omitempty,datetime=2006-01-02"`
	Page                int    `query:"page" json:"page" validate:"min=1"`
}

// Defaults returns filters that match every offer, on the first page.
func Defaults() OfferFilters {
	return OfferFilters{
		VenueID:      All,
		OffererID:    All,
		CategoryID:   All,
		Status:       All,
		CreationMode: All,
		Page:         DefaultPage,
	}
}

// ParamError reports one rejected query parameter.
type ParamError struct {
	Param   string `json:"param"`
	Message string `json:"message"`
}

// ParamErrors aggregates every rejected parameter of a query string.
type ParamErrors []ParamError

func (e ParamErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, pe := range e {
		parts = append(parts, pe.Param+": "+pe.Message)
	}
	return "invalid query: " + strings.Join(parts, "; ")
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func filtersValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// Report URL keys rather than Go field names.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("query"); name != "" {
				return name
			}
			return f.Name
		})
	})
	return validate
}

// Parse reads filters from a query string. Absent or empty keys take their
// default; unknown keys are ignored. Every invalid key is reported at once
// as ParamErrors.
func Parse(values url.Values) (OfferFilters, error) {
	f := Defaults()
	var perrs ParamErrors

	read := func(key string, dst *string) {
		if v := strings.TrimSpace(values.Get(key)); v != "" {
			*dst = v
		}
	}
	read(KeyName, &f.Name)
	read(KeyVenue, &f.VenueID)
	read(KeyOfferer, &f.OffererID)
	read(KeyCategory, &f.CategoryID)
	read(KeyStatus, &f.Status)
	read(KeyCreationMode, &f.CreationMode)
	read(KeyPeriodBeginningDate, &f.PeriodBeginningDate)
	read(KeyPeriodEndingDate, &f.PeriodEndingDate)

	if raw := strings.TrimSpace(values.Get(KeyPage)); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			perrs = append(perrs, ParamError{Param: KeyPage, Message: "must be an integer"})
		} else {
			f.Page = page
		}
	}

	perrs = append(perrs, f.validate()...)
	if len(perrs) > 0 {
		return f, perrs
	}
	return f, nil
}

// Validate checks filters built outside Parse.
func (f OfferFilters) Validate() error {
	if perrs := f.validate(); len(perrs) > 0 {
		return perrs
	}
	return nil
}

func (f OfferFilters) validate() ParamErrors {
	var perrs ParamErrors
	failed := map[string]bool{}
	if err := filtersValidator().Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return ParamErrors{{Param: "query", Message: err.Error()}}
		}
		for _, fe := range verrs {
			failed[fe.Field()] = true
			perrs = append(perrs, ParamError{Param: fe.Field(), Message: describe(fe)})
		}
	}
	// "number" lets through digit strings ID cannot turn into a usable id.
	for _, p := range []struct{ key, value string }{{KeyVenue, f.VenueID}, {KeyOfferer, f.OffererID}} {
		if failed[p.key] || p.value == All {
			continue
		}
		if _, ok := ID(p.value); !ok {
			perrs = append(perrs, ParamError{Param: p.key, Message: idMessage})
		}
	}
	if failed[KeyPeriodBeginningDate] || failed[KeyPeriodEndingDate] {
		return perrs
	}
	begin, okBegin := Date(f.PeriodBeginningDate)
	end, okEnd := Date(f.PeriodEndingDate)
	if okBegin && okEnd && end.Before(begin) {
		perrs = append(perrs, ParamError{Param: KeyPeriodEndingDate, Message: "must not be before " + KeyPeriodBeginningDate})
	}
	return perrs
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "must be >= " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		return "must be a date formatted YYYY-MM-DD"
	}
	switch {
	case strings.HasPrefix(fe.Tag(), "eq="+All+"|"):
		return idMessage
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// Encode writes the filters back, omitting every default value.
func Encode(f OfferFilters) url.Values {
	values := url.Values{}
	set := func(key, value, def string) {
		if value != "" && value != def {
			values.Set(key, value)
		}
	}
	set(KeyName, strings.TrimSpace(f.Name), "")
	set(KeyVenue, f.VenueID, All)
	set(KeyOfferer, f.OffererID, All)
	set(KeyCategory, f.CategoryID, All)
	set(KeyStatus, f.Status, All)
	set(KeyCreationMode, f.CreationMode, All)
	set(KeyPeriodBeginningDate, f.PeriodBeginningDate, "")
	set(KeyPeriodEndingDate, f.PeriodEndingDate, "")
	if f.Page > DefaultPage {
		values.Set(KeyPage, strconv.Itoa(f.Page))
	}
	return values
}

// WithPage returns the encoded filters pointing at another page.
func WithPage(f OfferFilters, page int) url.Values {
	f.Page = page
	return Encode(f)
}

// ID returns the numeric value of an id filter, or false for All, for
// anything that is not a positive int64.
func ID(v string) (int64, bool) {
	if v == "" || v == All {
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Value returns v unless it is the All sentinel or empty.
func Value(v string) (string, bool) {
	if v == "" || v == All {
		return "", false
	}
	return v, true
}

// Date parses a YYYY-MM-DD filter; empty or malformed values yield false.
func Date(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
