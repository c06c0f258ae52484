// Package stats aggregates journal entries into dashboard statistics.
//
// All functions take entries already scoped to one owner and never touch
// storage. Histogram ties keep first-encountered order of the input.
package stats

import (
	"slices"

	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/species"
)

// Counts holds per-bucket totals. Entries whose species is in no bucket
// count only towards Total.
type Counts struct {
	Total     int `json:"total"`
	BigGame   int `json:"big_game"`
	WildBoar  int `json:"wild_boar"`
	SmallGame int `json:"small_game"`
	Predator  int `json:"predator"`
}

// Bucketed returns the sum of the four named buckets.
func (c Counts) Bucketed() int {
	return c.BigGame + c.WildBoar + c.SmallGame + c.Predator
}

// SpeciesCount is one row of the species histogram.
type SpeciesCount struct {
	Species species.Code `json:"species"`
	Label   string       `json:"label"`
	Count   int          `json:"count"`
}

// AreaCount is one row of the area histogram.
type AreaCount struct {
	AreaID uint   `json:"area_id"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// CategoryCounts partitions entries into summary buckets in one pass.
func CategoryCounts(entries []entities.Entry) Counts {
	c := Counts{Total: len(entries)}
	for i := range entries {
		switch species.BucketOf(entries[i].Species) {
		case species.BucketBigGame:
			c.BigGame++
		case species.BucketWildBoar:
			c.WildBoar++
		case species.BucketSmallGame:
			c.SmallGame++
		case species.BucketPredator:
			c.Predator++
		}
	}
	return c
}

// SpeciesHistogram counts entries per species code, most frequent first.
// Ties keep the order in which each code first appears in entries.
func SpeciesHistogram(entries []entities.Entry) []SpeciesCount {
	index := make(map[species.Code]int)
	var rows []SpeciesCount
	for i := range entries {
		code := entries[i].Species
		if pos, ok := index[code]; ok {
			rows[pos].Count++
			continue
		}
		index[code] = len(rows)
		rows = append(rows, SpeciesCount{
			Species: code,
			Label:   species.DisplayLabel(code, ""),
			Count:   1,
		})
	}

	slices.SortStableFunc(rows, func(a, b SpeciesCount) int {
		return b.Count - a.Count
	})
	return rows
}

// TopSpecies returns at most limit rows of the species histogram. A limit of
// zero or less returns every row.
func TopSpecies(entries []entities.Entry, limit int) []SpeciesCount {
	return truncate(SpeciesHistogram(entries), limit)
}

// AreaHistogram counts entries per area name, most frequent first, and
// returns at most limit rows. Entries without an area are skipped. Entries
// must have their Area loaded; an AreaID without a loaded Area is skipped.
// A limit of zero or less returns every row.
func AreaHistogram(entries []entities.Entry, limit int) []AreaCount {
	index := make(map[string]int)
	var rows []AreaCount
	for i := range entries {
		e := &entries[i]
		if e.AreaID == nil || e.Area == nil {
			continue
		}
		name := e.Area.Name
		if pos, ok := index[name]; ok {
			rows[pos].Count++
			continue
		}
		index[name] = len(rows)
		rows = append(rows, AreaCount{AreaID: *e.AreaID, Name: name, Count: 1})
	}

	slices.SortStableFunc(rows, func(a, b AreaCount) int {
		return b.Count - a.Count
	})
	return truncate(rows, limit)
}

// TrophyList returns the entries with a kept trophy ordered by species rank,
// biggest game first. Unranked species sort last. Equal ranks keep input order.
func TrophyList(entries []entities.Entry) []entities.Entry {
	var trophies []entities.Entry
	for i := range entries {
		if entries[i].TrophyKept {
			trophies = append(trophies, entries[i])
		}
	}

	slices.SortStableFunc(trophies, func(a, b entities.Entry) int {
		return trophyKey(a.Species) - trophyKey(b.Species)
	})
	return trophies
}

// unrankedKey sorts behind every ranked code.
var unrankedKey = len(species.All())

func trophyKey(code species.Code) int {
	if rank, ok := species.TrophyRank(code); ok {
		return rank
	}
	return unrankedKey
}

// Summary is the statistics block for one set of entries.
type Summary struct {
	Counts  Counts         `json:"counts"`
	Species []SpeciesCount `json:"species"`
	Areas   []AreaCount    `json:"areas"`
}

// Summarize builds the counts and both histograms for entries.
func Summarize(entries []entities.Entry, topSpecies, topAreas int) Summary {
	return Summary{
		Counts:  CategoryCounts(entries),
		Species: TopSpecies(entries, topSpecies),
		Areas:   AreaHistogram(entries, topAreas),
	}
}

func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	if rows == nil {
		return []T{}
	}
	return rows
}
