package query_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/offer-catalog-service/internal/query"
)

func TestParse_EmptyQueryGivesDefaults(t *testing.T) {
	f, err := query.Parse(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, query.Defaults(), f)
	assert.Empty(t, query.Encode(f))
}

func TestParse_ReadsLocalizedKeys(t *testing.T) {
	values, err := url.ParseQuery("nom=Harry+Potter&lieu=12&structure=3&categorie=LIVRE_PAPIER&statut=sold_out" +
		"&creation=imported&periode-evenement-debut=2024-01-01&periode-evenement-fin=2024-02-01&page=4&utm_source=mail")
	require.NoError(t, err)

	f, err := query.Parse(values)
	require.NoError(t, err)
	assert.Equal(t, query.OfferFilters{
		Name:                "Harry Potter",
		VenueID:             "12",
		OffererID:           "3",
		CategoryID:          "LIVRE_PAPIER",
		Status:              "sold_out",
		CreationMode:        "imported",
		PeriodBeginningDate: "2024-01-01",
		PeriodEndingDate:    "2024-02-01",
		Page:                4,
	}, f)

	venueID, ok := query.ID(f.VenueID)
	assert.True(t, ok)
	assert.EqualValues(t, 12, venueID)
}

func TestParse_ReportsEveryInvalidParam(t *testing.T) {
	values := url.Values{
		query.KeyPage:                []string{"two"},
		query.KeyStatus:              []string{"gone"},
		query.KeyVenue:               []string{"-4"},
		query.KeyPeriodBeginningDate: []string{"01/02/2024"},
	}
	_, err := query.Parse(values)
	require.Error(t, err)

	var perrs query.ParamErrors
	require.ErrorAs(t, err, &perrs)
	params := map[string]bool{}
	for _, pe := range perrs {
		params[pe.Param] = true
		assert.NotEmpty(t, pe.Message)
	}
	assert.True(t, params[query.KeyPage])
	assert.True(t, params[query.KeyStatus])
	assert.True(t, params[query.KeyVenue])
	assert.True(t, params[query.KeyPeriodBeginningDate])
}

func TestParse_PageMustBePositive(t *testing.T) {
	_, err := query.Parse(url.Values{query.KeyPage: []string{"0"}})
	var perrs query.ParamErrors
	require.ErrorAs(t, err, &perrs)
	require.Len(t, perrs, 1)
	assert.Equal(t, query.KeyPage, perrs[0].Param)
}

func TestParse_PeriodMustBeOrdered(t *testing.T) {
	_, err := query.Parse(url.Values{
		query.KeyPeriodBeginningDate: []string{"2024-03-01"},
		query.KeyPeriodEndingDate:    []string{"2024-02-01"},
	})
	var perrs query.ParamErrors
	require.ErrorAs(t, err, &perrs)
	assert.Equal(t, query.KeyPeriodEndingDate, perrs[0].Param)
}

func TestEncode_OmitsDefaults(t *testing.T) {
	f := query.Defaults()
	f.Status = "active"
	assert.Equal(t, "statut=active", query.Encode(f).Encode())

	f.Page = 1
	assert.Equal(t, "statut=active", query.WithPage(f, 1).Encode())
	assert.Equal(t, "page=3&statut=active", query.WithPage(f, 3).Encode())
	assert.Equal(t, 1, f.Page, "WithPage must not mutate its argument")
}

func TestEncode_RoundTrip(t *testing.T) {
	in := query.Defaults()
	in.Name = "Le Petit Prince"
	in.OffererID = "7"
	in.Page = 2

	out, err := query.Parse(query.Encode(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestHelpers(t *testing.T) {
	_, ok := query.ID(query.All)
	assert.False(t, ok)
	_, ok = query.Value(query.All)
	assert.False(t, ok)
	v, ok := query.Value("CINE_PLEIN_AIR")
	assert.True(t, ok)
	assert.Equal(t, "CINE_PLEIN_AIR", v)

	d, ok := query.Date("2024-05-17")
	require.True(t, ok)
	assert.Equal(t, 17, d.Day())
	_, ok = query.Date("")
	assert.False(t, ok)
}

func TestParse_RejectsUnusableIDs(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"venue_overflows_int64", query.KeyVenue, "99999999999999999999"},
		{"offerer_overflows_int64", query.KeyOfferer, "9223372036854775808"},
		{"venue_zero", query.KeyVenue, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := query.Parse(url.Values{tc.key: []string{tc.value}})
			var perrs query.ParamErrors
			require.ErrorAs(t, err, &perrs)
			require.Len(t, perrs, 1)
			assert.Equal(t, tc.key, perrs[0].Param)
			assert.Equal(t, `must be "all" or a numeric id`, perrs[0].Message)
		})
	}

	f, err := query.Parse(url.Values{query.KeyOfferer: []string{"9223372036854775807"}})
	require.NoError(t, err)
	id, ok := query.ID(f.OffererID)
	assert.True(t, ok)
	assert.EqualValues(t, int64(9223372036854775807), id)
}

func TestParse_PeriodOrderSkippedOnMalformedDate(t *testing.T) {
	_, err := query.Parse(url.Values{
		query.KeyPeriodBeginningDate: []string{"2024-13-01"},
		query.KeyPeriodEndingDate:    []string{"2024-01-01"},
	})
	var perrs query.ParamErrors
	require.ErrorAs(t, err, &perrs)
	require.Len(t, perrs, 1)
	assert.Equal(t, query.KeyPeriodBeginningDate, perrs[0].Param)
}
