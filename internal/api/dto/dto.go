// Package dto contains the JSON shapes of API responses that add derived
// fields to the stored entities.
package dto

import (
	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/journal"
	"github.com/huntlog/huntlog/internal/query"
	"github.com/huntlog/huntlog/internal/season"
	"github.com/huntlog/huntlog/internal/stats"
)

// EntryResponse is an entry with its display label and resolved
// reference names.
type EntryResponse struct {
	entities.Entry
	Label       string `json:"display_label"`  // "🦌 Rehbock"
	Marker      string `json:"display_marker"` // "🦌"
	AreaName    string `json:"area_name,omitempty"`
	StandName   string `json:"stand_name,omitempty"`
	FirearmName string `json:"firearm_name,omitempty"`
}

// NewEntryResponse builds the response for e.
func NewEntryResponse(e *entities.Entry) EntryResponse {
	r := EntryResponse{
		Entry:    *e,
		Label:    e.DisplayLabel(),
		Marker:   e.DisplayMarker(),
		AreaName: e.AreaName(),
	}
	if e.Stand != nil {
		r.StandName = e.Stand.Name
	}
	if e.Firearm != nil {
		r.FirearmName = e.Firearm.Name
	}
	return r
}

// NewEntryResponses converts a list, never returning nil.
func NewEntryResponses(entries []entities.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, NewEntryResponse(&entries[i]))
	}
	return out
}

// EntryListResponse is the filtered entry list with its facets.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
	Areas   []entities.Area `json:"areas"`
	Years   []int           `json:"years"`
	Params  query.Params    `json:"params"`
	Count   int             `json:"count"`
}

// NewEntryListResponse converts a journal entry list.
func NewEntryListResponse(list *journal.EntryList) EntryListResponse {
	areas := list.Areas
	if areas == nil {
		areas = []entities.Area{}
	}
	years := list.Years
	if years == nil {
		years = []int{}
	}
	return EntryListResponse{
		Entries: NewEntryResponses(list.Entries),
		Areas:   areas,
		Years:   years,
		Params:  list.Params,
		Count:   len(list.Entries),
	}
}

// AreaResponse is an area with the number of entries recorded in it.
type AreaResponse struct {
	entities.Area
	EntryCount int64 `json:"entry_count"`
}

// DashboardResponse is the statistics overview.
type DashboardResponse struct {
	Date     string          `json:"date"`
	Season   season.Window   `json:"season"`
	Current  stats.Summary   `json:"season_stats"`
	AllTime  stats.Summary   `json:"all_time_stats"`
	Trophies []EntryResponse `json:"trophies"`
	Recent   []EntryResponse `json:"recent"`
}

// NewDashboardResponse converts a journal dashboard.
func NewDashboardResponse(d *journal.Dashboard) DashboardResponse {
	return DashboardResponse{
		Date:     d.Date,
		Season:   d.Season,
		Current:  d.Current,
		AllTime:  d.AllTime,
		Trophies: NewEntryResponses(d.Trophies),
		Recent:   NewEntryResponses(d.Recent),
	}
}

// SeasonResponse describes the season containing Date.
type SeasonResponse struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// NewSeasonResponse builds the response for the season containing date.
func NewSeasonResponse(date string, w season.Window) SeasonResponse {
	return SeasonResponse{
		Date:  date,
		Start: w.StartDate(),
		End:   w.EndDate(),
		Label: w.Label(),
	}
}
