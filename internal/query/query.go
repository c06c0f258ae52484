// Package query filters and sorts one owner's journal entries for list views.
package query

import (
	"cmp"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/species"
)

// SortKey is one of the allow-listed list orderings.
type SortKey string

const (
	SortDateDesc   SortKey = "-date"
	SortDateAsc    SortKey = "date"
	SortSpecies    SortKey = "species"
	SortWeightDesc SortKey = "-weight"

	// DefaultSort is used for empty and unknown sort values.
	DefaultSort = SortDateDesc
)

// SortKeys lists the accepted sort values.
var SortKeys = []SortKey{SortDateDesc, SortDateAsc, SortSpecies, SortWeightDesc}

// NormalizeSort returns key when it is allow-listed and DefaultSort otherwise.
func NormalizeSort(key string) SortKey {
	k := SortKey(strings.TrimSpace(key))
	if slices.Contains(SortKeys, k) {
		return k
	}
	return DefaultSort
}

// Params are the optional list filters. Zero values are not applied.
type Params struct {
	Species species.Code `json:"species,omitempty"`
	AreaID  uint         `json:"area,omitempty"`
	Year    int          `json:"year,omitempty"`
	Sort    SortKey      `json:"sort"`
}

// ParseParams reads species, area, year and sort from query values.
// Malformed area and year values are treated as absent.
func ParseParams(values url.Values) Params {
	p := Params{
		Species: species.Code(strings.TrimSpace(values.Get("species"))),
		Sort:    NormalizeSort(values.Get("sort")),
	}
	if id, err := strconv.ParseUint(strings.TrimSpace(values.Get("area")), 10, 64); err == nil && id > 0 {
		p.AreaID = uint(id)
	}
	if year, err := strconv.Atoi(strings.TrimSpace(values.Get("year"))); err == nil && year > 0 {
		p.Year = year
	}
	return p
}

// Result is a filtered list plus the facets used to populate filter controls.
type Result struct {
	Entries []entities.Entry `json:"entries"`
	Areas   []entities.Area  `json:"areas"`
	Years   []int            `json:"years"`
	Params  Params           `json:"params"`
}

// Apply filters and sorts entries. entries must be the owner's full
// collection; areas are the owner's areas. Facets are computed from the
// unfiltered input.
func Apply(entries []entities.Entry, areas []entities.Area, p Params) Result {
	p.Sort = NormalizeSort(string(p.Sort))

	filtered := make([]entities.Entry, 0, len(entries))
	for i := range entries {
		if p.matches(&entries[i]) {
			filtered = append(filtered, entries[i])
		}
	}

	SortDefault(filtered)
	if p.Sort != SortDateDesc {
		slices.SortStableFunc(filtered, comparator(p.Sort))
	}

	return Result{
		Entries: filtered,
		Areas:   SortAreas(areas),
		Years:   Years(entries),
		Params:  p,
	}
}

func (p Params) matches(e *entities.Entry) bool {
	if p.Species != "" && e.Species != p.Species {
		return false
	}
	if p.AreaID != 0 && (e.AreaID == nil || *e.AreaID != p.AreaID) {
		return false
	}
	if p.Year != 0 && e.Year() != strconv.Itoa(p.Year) {
		return false
	}
	return true
}

// SortDefault orders entries by date, time of day and creation time, newest
// first. Entries without a time sort after timed entries of the same day.
func SortDefault(entries []entities.Entry) {
	slices.SortStableFunc(entries, compareDefault)
}

func compareDefault(a, b entities.Entry) int {
	if c := cmp.Compare(b.Date, a.Date); c != 0 {
		return c
	}
	if c := cmp.Compare(b.TimeOfDay(), a.TimeOfDay()); c != 0 {
		return c
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

// comparator returns the ordering for non-default keys. Ties keep the
// default order established before the stable sort.
func comparator(key SortKey) func(a, b entities.Entry) int {
	switch key {
	case SortDateAsc:
		return func(a, b entities.Entry) int {
			return cmp.Compare(a.Date, b.Date)
		}
	case SortSpecies:
		return func(a, b entities.Entry) int {
			return cmp.Compare(a.Species, b.Species)
		}
	case SortWeightDesc:
		return func(a, b entities.Entry) int {
			switch {
			case a.WeightKg == nil && b.WeightKg == nil:
				return 0
			case a.WeightKg == nil:
				return 1
			case b.WeightKg == nil:
				return -1
			}
			return b.WeightKg.Cmp(*a.WeightKg)
		}
	default:
		return compareDefault
	}
}

// Years returns the distinct entry years, newest first.
func Years(entries []entities.Entry) []int {
	seen := make(map[int]bool)
	years := []int{}
	for i := range entries {
		y, err := strconv.Atoi(entries[i].Year())
		if err != nil || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	slices.SortFunc(years, func(a, b int) int { return b - a })
	return years
}

var areaCollator = collate.New(language.German, collate.IgnoreCase)

// SortAreas returns a copy of areas ordered by name using German collation.
func SortAreas(areas []entities.Area) []entities.Area {
	out := slices.Clone(areas)
	if out == nil {
		return []entities.Area{}
	}
	slices.SortStableFunc(out, func(a, b entities.Area) int {
		return areaCollator.CompareString(a.Name, b.Name)
	})
	return out
}
