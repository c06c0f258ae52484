// Package season computes the hunting year window, April 1 to March 31.
package season

import (
	"fmt"
	"time"
)

// DateLayout is the storage and wire format of calendar dates.
const DateLayout = time.DateOnly

// startMonth is the first month of a hunting year.
const startMonth = time.April

// Window is one hunting season. Start and End are inclusive calendar dates at
// midnight in the location of the reference day.
type Window struct {
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

// Current returns the season containing today.
func Current(today time.Time) Window {
	return ForYear(StartYear(today), today.Location())
}

// StartYear returns the calendar year in which the season containing day begins.
func StartYear(day time.Time) int {
	if day.Month() >= startMonth {
		return day.Year()
	}
	return day.Year() - 1
}

// ForYear returns the season starting April 1 of year.
func ForYear(year int, loc *time.Location) Window {
	if loc == nil {
		loc = time.UTC
	}
	return Window{
		Start: time.Date(year, startMonth, 1, 0, 0, 0, 0, loc),
		End:   time.Date(year+1, time.March, 31, 0, 0, 0, 0, loc),
	}
}

// StartDate returns the first day as YYYY-MM-DD.
func (w Window) StartDate() string {
	return w.Start.Format(DateLayout)
}

// EndDate returns the last day as YYYY-MM-DD.
func (w Window) EndDate() string {
	return w.End.Format(DateLayout)
}

// Contains reports whether the calendar day of t lies in the window.
func (w Window) Contains(t time.Time) bool {
	d := t.Format(DateLayout)
	return d >= w.StartDate() && d <= w.EndDate()
}

// ContainsDate reports whether a YYYY-MM-DD date lies in the window.
func (w Window) ContainsDate(date string) bool {
	return date >= w.StartDate() && date <= w.EndDate()
}

// Label returns the short season name, e.g. "2024/25".
func (w Window) Label() string {
	return fmt.Sprintf("%d/%02d", w.Start.Year(), (w.Start.Year()+1)%100)
}

// Previous returns the season before w.
func (w Window) Previous() Window {
	return ForYear(w.Start.Year()-1, w.Start.Location())
}

// MarshalJSON renders the window with plain dates.
func (w Window) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, `{"start":%q,"end":%q,"label":%q}`, w.StartDate(), w.EndDate(), w.Label()), nil
}
