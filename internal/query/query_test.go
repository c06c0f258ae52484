package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/species"
)

func ptr[T any](v T) *T { return &v }

func ids(entries []entities.Entry) []uint {
	out := make([]uint, len(entries))
	for i := range entries {
		out[i] = entries[i].ID
	}
	return out
}

func sample() []entities.Entry {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []entities.Entry{
		{ID: 1, Species: species.Fox, Date: "2022-12-01", AreaID: ptr(uint(1)), WeightKg: ptr(decimal.RequireFromString("6.5")), CreatedAt: base},
		{ID: 2, Species: species.Roebuck, Date: "2023-05-10", Time: ptr("05:30"), AreaID: ptr(uint(2)), WeightKg: ptr(decimal.RequireFromString("14.2")), CreatedAt: base},
		{ID: 3, Species: species.Hare, Date: "2023-11-20", CreatedAt: base},
		{ID: 4, Species: species.Boar, Date: "2024-01-15", Time: ptr("22:10"), AreaID: ptr(uint(1)), WeightKg: ptr(decimal.RequireFromString("62.0")), CreatedAt: base},
		{ID: 5, Species: species.Fox, Date: "2023-05-10", Time: ptr("21:00"), CreatedAt: base},
		{ID: 6, Species: species.Fox, Date: "2023-05-10", Time: ptr("21:00"), CreatedAt: base.Add(time.Hour)},
	}
}

func TestNormalizeSort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SortWeightDesc, NormalizeSort("-weight"))
	assert.Equal(t, SortDateAsc, NormalizeSort(" date "))
	assert.Equal(t, DefaultSort, NormalizeSort(""))
	assert.Equal(t, DefaultSort, NormalizeSort("id; DROP TABLE entries"))
	assert.Equal(t, DefaultSort, NormalizeSort("-species"))
}

func TestParseParams(t *testing.T) {
	t.Parallel()

	p := ParseParams(url.Values{"species": {"fox"}, "area": {"7"}, "year": {"2023"}, "sort": {"species"}})
	assert.Equal(t, Params{Species: species.Fox, AreaID: 7, Year: 2023, Sort: SortSpecies}, p)

	p = ParseParams(url.Values{"area": {"abc"}, "year": {"last"}, "sort": {"bogus"}})
	assert.Equal(t, Params{Sort: DefaultSort}, p)
}

func TestApplyDefaultOrdering(t *testing.T) {
	t.Parallel()

	r := Apply(sample(), nil, Params{})
	// date desc, then time desc (untimed last), then created_at desc
	assert.Equal(t, []uint{4, 3, 6, 5, 2, 1}, ids(r.Entries))
	assert.Equal(t, SortDateDesc, r.Params.Sort)
}

func TestApplyYearFilter(t *testing.T) {
	t.Parallel()

	r := Apply(sample(), nil, Params{Year: 2023})
	assert.ElementsMatch(t, []uint{2, 3, 5, 6}, ids(r.Entries))
	for _, e := range r.Entries {
		assert.Equal(t, "2023", e.Year())
	}
	assert.Equal(t, []int{2024, 2023, 2022}, r.Years, "years come from the unfiltered collection")
}

func TestApplyConjunctiveFilters(t *testing.T) {
	t.Parallel()

	r := Apply(sample(), nil, Params{Species: species.Fox, AreaID: 1})
	assert.Equal(t, []uint{1}, ids(r.Entries))

	r = Apply(sample(), nil, Params{Species: species.Fox, Year: 2023})
	assert.Equal(t, []uint{6, 5}, ids(r.Entries))

	r = Apply(sample(), nil, Params{AreaID: 99})
	assert.Empty(t, r.Entries)
}

func TestApplySortKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sort SortKey
		want []uint
	}{
		{SortDateAsc, []uint{1, 6, 5, 2, 3, 4}},
		{SortSpecies, []uint{4, 6, 5, 1, 3, 2}},
		{SortWeightDesc, []uint{4, 2, 1, 3, 6, 5}},
		{SortKey("price"), []uint{4, 3, 6, 5, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			t.Parallel()
			r := Apply(sample(), nil, Params{Sort: tt.sort})
			assert.Equal(t, tt.want, ids(r.Entries))
		})
	}
}

func TestApplyAreaFacet(t *testing.T) {
	t.Parallel()

	areas := []entities.Area{{ID: 1, Name: "Zollwald"}, {ID: 2, Name: "Ödland"}, {ID: 3, Name: "auenwald"}}
	r := Apply(nil, areas, Params{})

	require.Len(t, r.Areas, 3)
	assert.Equal(t, []string{"auenwald", "Ödland", "Zollwald"},
		[]string{r.Areas[0].Name, r.Areas[1].Name, r.Areas[2].Name})
	assert.Equal(t, "Zollwald", areas[0].Name, "input is not reordered")
	assert.NotNil(t, r.Entries)
	assert.Empty(t, r.Years)
}
