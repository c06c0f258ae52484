package journal

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/season"
	"github.com/huntlog/huntlog/internal/species"
)

const (
	timeLayout    = "15:04"
	minBuildYear  = 1900
	maxNameLen    = 200
	maxShortLen   = 100
	maxCaliberLen = 50
)

var (
	maxLatitude  = decimal.NewFromInt(90)
	maxLongitude = decimal.NewFromInt(180)
)

// EntryInput is a partial Entry. Unset fields are left untouched.
type EntryInput struct {
	Species       Optional[species.Code]    `json:"species,omitzero"`
	SpeciesCustom Optional[string]          `json:"species_custom,omitzero"`
	Date          Optional[string]          `json:"date,omitzero"`
	Time          Optional[string]          `json:"time,omitzero"`
	AreaID        Optional[uint]            `json:"area_id,omitzero"`
	StandID       Optional[uint]            `json:"stand_id,omitzero"`
	FirearmID     Optional[uint]            `json:"firearm_id,omitzero"`
	Sex           Optional[entities.Sex]    `json:"sex,omitzero"`
	WeightKg      Optional[decimal.Decimal] `json:"weight_kg,omitzero"`
	EstimatedAge  Optional[string]          `json:"estimated_age,omitzero"`
	HuntingMethod Optional[string]          `json:"hunting_method,omitzero"`
	ShotDistanceM Optional[int]             `json:"shot_distance_m,omitzero"`
	Notes         Optional[string]          `json:"notes,omitzero"`
	Weather       Optional[string]          `json:"weather,omitzero"`
	TemperatureC  Optional[int]             `json:"temperature_c,omitzero"`
	TrophyKept    Optional[bool]            `json:"trophy_kept,omitzero"`
}

// AreaInput is a partial Area.
type AreaInput struct {
	Name         Optional[string]          `json:"name,omitzero"`
	Description  Optional[string]          `json:"description,omitzero"`
	SizeHectares Optional[decimal.Decimal] `json:"size_hectares,omitzero"`
}

// StandInput is a partial Stand.
type StandInput struct {
	AreaID        Optional[uint]                    `json:"area_id,omitzero"`
	Name          Optional[string]                  `json:"name,omitzero"`
	Kind          Optional[entities.StandKind]      `json:"kind,omitzero"`
	Description   Optional[string]                  `json:"description,omitzero"`
	Latitude      Optional[decimal.Decimal]         `json:"latitude,omitzero"`
	Longitude     Optional[decimal.Decimal]         `json:"longitude,omitzero"`
	Condition     Optional[entities.StandCondition] `json:"condition,omitzero"`
	BuildYear     Optional[int]                     `json:"build_year,omitzero"`
	LastInspected Optional[string]                  `json:"last_inspected,omitzero"`
	Notes         Optional[string]                  `json:"notes,omitzero"`
	Active        Optional[bool]                    `json:"active,omitzero"`
}

// FirearmInput is a partial Firearm.
type FirearmInput struct {
	Name          Optional[string]               `json:"name,omitzero"`
	Kind          Optional[entities.FirearmKind] `json:"kind,omitzero"`
	Manufacturer  Optional[string]               `json:"manufacturer,omitzero"`
	Model         Optional[string]               `json:"model,omitzero"`
	SerialNumber  Optional[string]               `json:"serial_number,omitzero"`
	Caliber       Optional[string]               `json:"caliber,omitzero"`
	PurchaseDate  Optional[string]               `json:"purchase_date,omitzero"`
	LicenseNumber Optional[string]               `json:"license_number,omitzero"`
	Notes         Optional[string]               `json:"notes,omitzero"`
	Active        Optional[bool]                 `json:"active,omitzero"`
}

// newEntry returns an Entry with creation defaults for owner.
func newEntry(owner uint) *entities.Entry {
	return &entities.Entry{AccountID: owner, Sex: entities.SexUnknown}
}

func newStand(owner uint) *entities.Stand {
	return &entities.Stand{AccountID: owner, Kind: entities.StandOther, Condition: entities.ConditionGood, Active: true}
}

func newFirearm(owner uint) *entities.Firearm {
	return &entities.Firearm{AccountID: owner, Kind: entities.FirearmRifle, Active: true}
}

// MergeEntry applies in to e and validates the result.
func MergeEntry(e *entities.Entry, in EntryInput) *ValidationError {
	v := &ValidationError{}

	if in.Species.Set {
		e.Species = species.Code(strings.TrimSpace(string(in.Species.Value)))
	}
	mergeText(v, "species_custom", &e.SpeciesCustom, in.SpeciesCustom, maxShortLen)
	if in.Date.Set {
		e.Date = strings.TrimSpace(in.Date.Value)
	}
	mergeClock(v, "time", &e.Time, in.Time)
	mergeRef(&e.AreaID, in.AreaID)
	mergeRef(&e.StandID, in.StandID)
	mergeRef(&e.FirearmID, in.FirearmID)
	if in.Sex.Set {
		e.Sex = in.Sex.Value
		if in.Sex.Null || e.Sex == "" {
			e.Sex = entities.SexUnknown
		}
	}
	if in.WeightKg.Set {
		if in.WeightKg.Null {
			e.WeightKg = nil
		} else {
			w := in.WeightKg.Value.Round(1)
			e.WeightKg = &w
		}
	}
	mergeText(v, "estimated_age", &e.EstimatedAge, in.EstimatedAge, maxShortLen)
	mergeText(v, "hunting_method", &e.HuntingMethod, in.HuntingMethod, maxShortLen)
	if in.ShotDistanceM.Set {
		switch {
		case in.ShotDistanceM.Null:
			e.ShotDistanceM = nil
		case in.ShotDistanceM.Value < 0:
			v.add("shot_distance_m", "must not be negative")
		default:
			d := uint(in.ShotDistanceM.Value)
			e.ShotDistanceM = &d
		}
	}
	mergeText(v, "notes", &e.Notes, in.Notes, 0)
	mergeText(v, "weather", &e.Weather, in.Weather, maxShortLen)
	if in.TemperatureC.Set {
		e.TemperatureC = optionalPtr(in.TemperatureC)
	}
	if in.TrophyKept.Set {
		e.TrophyKept = in.TrophyKept.Present() && in.TrophyKept.Value
	}

	if e.Species != species.Other {
		e.SpeciesCustom = ""
	}
	switch {
	case e.Species == "":
		v.add("species", "required")
	case e.Species == species.Other && e.SpeciesCustom == "":
		v.add("species_custom", "required when species is other")
	case !species.Valid(e.Species, e.SpeciesCustom):
		v.add("species", "unknown species")
	}
	checkDate(v, "date", e.Date, true)
	if !e.Sex.Valid() {
		v.add("sex", "must be one of male, female, unknown")
	}
	if e.WeightKg != nil && e.WeightKg.IsNegative() {
		v.add("weight_kg", "must not be negative")
	}

	return v.orNil(in)
}

// MergeArea applies in to a and validates the result.
func MergeArea(a *entities.Area, in AreaInput) *ValidationError {
	v := &ValidationError{}

	mergeText(v, "name", &a.Name, in.Name, maxNameLen)
	mergeText(v, "description", &a.Description, in.Description, 0)
	if in.SizeHectares.Set {
		if in.SizeHectares.Null {
			a.SizeHectares = nil
		} else {
			size := in.SizeHectares.Value.Round(2)
			a.SizeHectares = &size
		}
	}

	if a.Name == "" {
		v.add("name", "required")
	}
	if a.SizeHectares != nil && !a.SizeHectares.IsPositive() {
		v.add("size_hectares", "must be positive")
	}

	return v.orNil(in)
}

// MergeStand applies in to s and validates the result. now bounds the build year.
func MergeStand(s *entities.Stand, in StandInput, now time.Time) *ValidationError {
	v := &ValidationError{}

	if in.AreaID.Set {
		s.AreaID = 0
		if in.AreaID.Present() {
			s.AreaID = in.AreaID.Value
		}
	}
	mergeText(v, "name", &s.Name, in.Name, maxNameLen)
	if in.Kind.Set {
		s.Kind = entities.StandOther
		if in.Kind.Present() && in.Kind.Value != "" {
			s.Kind = in.Kind.Value
		}
	}
	mergeText(v, "description", &s.Description, in.Description, 0)
	mergeCoordinate(&s.Latitude, in.Latitude)
	mergeCoordinate(&s.Longitude, in.Longitude)
	if in.Condition.Set {
		s.Condition = entities.ConditionGood
		if in.Condition.Present() && in.Condition.Value != "" {
			s.Condition = in.Condition.Value
		}
	}
	if in.BuildYear.Set {
		s.BuildYear = optionalPtr(in.BuildYear)
	}
	mergeDate(&s.LastInspected, in.LastInspected)
	mergeText(v, "notes", &s.Notes, in.Notes, 0)
	if in.Active.Set {
		s.Active = in.Active.Present() && in.Active.Value
	}

	if s.AreaID == 0 {
		v.add("area_id", "required")
	}
	if s.Name == "" {
		v.add("name", "required")
	}
	if !s.Kind.Valid() {
		v.add("kind", "unknown stand kind")
	}
	if !s.Condition.Valid() {
		v.add("condition", "unknown condition")
	}
	if s.Latitude != nil && s.Latitude.Abs().GreaterThan(maxLatitude) {
		v.add("latitude", "must be between -90 and 90")
	}
	if s.Longitude != nil && s.Longitude.Abs().GreaterThan(maxLongitude) {
		v.add("longitude", "must be between -180 and 180")
	}
	if s.BuildYear != nil && (*s.BuildYear < minBuildYear || *s.BuildYear > now.Year()+1) {
		v.add("build_year", "out of range")
	}
	if s.LastInspected != nil {
		checkDate(v, "last_inspected", *s.LastInspected, false)
	}

	return v.orNil(in)
}

// MergeFirearm applies in to f and validates the result.
func MergeFirearm(f *entities.Firearm, in FirearmInput) *ValidationError {
	v := &ValidationError{}

	mergeText(v, "name", &f.Name, in.Name, maxNameLen)
	if in.Kind.Set {
		f.Kind = entities.FirearmRifle
		if in.Kind.Present() && in.Kind.Value != "" {
			f.Kind = in.Kind.Value
		}
	}
	mergeText(v, "manufacturer", &f.Manufacturer, in.Manufacturer, maxShortLen)
	mergeText(v, "model", &f.Model, in.Model, maxShortLen)
	mergeText(v, "serial_number", &f.SerialNumber, in.SerialNumber, maxShortLen)
	mergeText(v, "caliber", &f.Caliber, in.Caliber, maxCaliberLen)
	mergeDate(&f.PurchaseDate, in.PurchaseDate)
	mergeText(v, "license_number", &f.LicenseNumber, in.LicenseNumber, maxShortLen)
	mergeText(v, "notes", &f.Notes, in.Notes, 0)
	if in.Active.Set {
		f.Active = in.Active.Present() && in.Active.Value
	}

	if f.Name == "" {
		v.add("name", "required")
	}
	if !f.Kind.Valid() {
		v.add("kind", "unknown firearm kind")
	}
	if f.Caliber == "" {
		v.add("caliber", "required")
	}
	if f.PurchaseDate != nil {
		checkDate(v, "purchase_date", *f.PurchaseDate, false)
	}

	return v.orNil(in)
}

// mergeText trims and stores a text field. maxLen 0 means unbounded.
func mergeText(v *ValidationError, field string, dst *string, o Optional[string], maxLen int) {
	if !o.Set {
		return
	}
	*dst = strings.TrimSpace(o.Value)
	if maxLen > 0 && utf8.RuneCountInString(*dst) > maxLen {
		v.add(field, "too long")
	}
}

// mergeRef stores an optional foreign key; null and 0 clear it.
func mergeRef(dst **uint, o Optional[uint]) {
	if !o.Set {
		return
	}
	if !o.Present() || o.Value == 0 {
		*dst = nil
		return
	}
	id := o.Value
	*dst = &id
}

// mergeDate stores an optional YYYY-MM-DD value; null and "" clear it.
func mergeDate(dst **string, o Optional[string]) {
	if !o.Set {
		return
	}
	s := strings.TrimSpace(o.Value)
	if !o.Present() || s == "" {
		*dst = nil
		return
	}
	*dst = &s
}

// mergeClock stores an optional HH:MM value.
func mergeClock(v *ValidationError, field string, dst **string, o Optional[string]) {
	mergeDate(dst, o)
	if *dst == nil {
		return
	}
	t, err := time.Parse(timeLayout, **dst)
	if err != nil {
		v.add(field, "must be HH:MM")
		return
	}
	normalized := t.Format(timeLayout)
	*dst = &normalized
}

func mergeCoordinate(dst **decimal.Decimal, o Optional[decimal.Decimal]) {
	if !o.Set {
		return
	}
	if !o.Present() {
		*dst = nil
		return
	}
	c := o.Value.Round(7)
	*dst = &c
}

func optionalPtr[T any](o Optional[T]) *T {
	if !o.Present() {
		return nil
	}
	v := o.Value
	return &v
}

// checkDate validates a YYYY-MM-DD date.
func checkDate(v *ValidationError, field, value string, required bool) {
	if value == "" {
		if required {
			v.add(field, "required")
		}
		return
	}
	if _, err := time.Parse(season.DateLayout, value); err != nil {
		v.add(field, "must be YYYY-MM-DD")
	}
}
