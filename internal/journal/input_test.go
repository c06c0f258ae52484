package journal

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/species"
)

func TestOptionalJSON(t *testing.T) {
	t.Parallel()

	var in EntryInput
	require.NoError(t, json.Unmarshal([]byte(`{"notes":null,"weather":"sonnig","weight_kg":"18.25","trophy_kept":false}`), &in))

	assert.True(t, in.Notes.Set)
	assert.True(t, in.Notes.Null)
	assert.False(t, in.Notes.Present())
	assert.True(t, in.Weather.Present())
	assert.Equal(t, "sonnig", in.Weather.Value)
	assert.True(t, in.TrophyKept.Present())
	assert.False(t, in.TrophyKept.Value)
	assert.False(t, in.Date.Set)
	assert.Equal(t, "18.25", in.WeightKg.Value.String())

	out, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"notes":null,"weather":"sonnig","weight_kg":"18.25","trophy_kept":false}`, string(out))
}

func TestMergeEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         EntryInput
		wantFields []string
		check      func(t *testing.T, e *entities.Entry)
	}{
		{
			name:       "empty input",
			in:         EntryInput{},
			wantFields: []string{"species", "date"},
		},
		{
			name: "minimal entry gets defaults",
			in:   EntryInput{Species: Some(species.Roebuck), Date: Some("2024-05-01")},
			check: func(t *testing.T, e *entities.Entry) {
				assert.Equal(t, entities.SexUnknown, e.Sex)
				assert.False(t, e.TrophyKept)
				assert.Nil(t, e.Time)
			},
		},
		{
			name: "time is normalized and weight rounded",
			in: EntryInput{
				Species: Some(species.Boar), Date: Some("2024-05-01"), Time: Some("7:05"),
				WeightKg: Some(decimal.RequireFromString("54.36")),
			},
			check: func(t *testing.T, e *entities.Entry) {
				require.NotNil(t, e.Time)
				assert.Equal(t, "07:05", *e.Time)
				assert.Equal(t, "54.4", e.WeightKg.String())
			},
		},
		{
			name:       "other requires custom text",
			in:         EntryInput{Species: Some(species.Other), Date: Some("2024-05-01")},
			wantFields: []string{"species_custom"},
		},
		{
			name: "custom text dropped for taxonomy species",
			in:   EntryInput{Species: Some(species.Fox), SpeciesCustom: Some("Steinmarder"), Date: Some("2024-05-01")},
			check: func(t *testing.T, e *entities.Entry) {
				assert.Empty(t, e.SpeciesCustom)
			},
		},
		{
			name: "custom species",
			in:   EntryInput{Species: Some(species.Other), SpeciesCustom: Some(" Steinmarder "), Date: Some("2024-05-01")},
			check: func(t *testing.T, e *entities.Entry) {
				assert.Equal(t, "Steinmarder", e.SpeciesCustom)
				assert.Contains(t, e.DisplayLabel(), "Steinmarder")
			},
		},
		{
			name:       "unknown species",
			in:         EntryInput{Species: Some(species.Code("xyz")), Date: Some("2024-05-01")},
			wantFields: []string{"species"},
		},
		{
			name: "malformed values",
			in: EntryInput{
				Species: Some(species.Fox), Date: Some("15.06.2024"), Time: Some("25:00"),
				Sex: Some(entities.Sex("x")), WeightKg: Some(decimal.NewFromInt(-1)), ShotDistanceM: Some(-3),
			},
			wantFields: []string{"date", "time", "sex", "weight_kg", "shot_distance_m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newEntry(1)
			verr := MergeEntry(e, tt.in)
			if len(tt.wantFields) > 0 {
				require.NotNil(t, verr)
				for _, f := range tt.wantFields {
					assert.Contains(t, verr.Fields, f)
				}
				assert.Len(t, verr.Fields, len(tt.wantFields))
				assert.Equal(t, tt.in, verr.Input)
				return
			}
			require.Nil(t, verr)
			if tt.check != nil {
				tt.check(t, e)
			}
		})
	}
}

func TestMergeEntryPartialUpdate(t *testing.T) {
	t.Parallel()

	tm := "18:30"
	area := uint(4)
	e := &entities.Entry{Species: species.Fox, Date: "2024-01-10", Time: &tm, AreaID: &area, Sex: entities.SexMale, Notes: "Luderplatz"}

	verr := MergeEntry(e, EntryInput{Time: Null[string](), Notes: Some("Kirrung"), AreaID: Some[uint](0)})
	require.Nil(t, verr)

	assert.Nil(t, e.Time)
	assert.Nil(t, e.AreaID)
	assert.Equal(t, "Kirrung", e.Notes)
	assert.Equal(t, species.Fox, e.Species)
	assert.Equal(t, entities.SexMale, e.Sex)
}

func TestMergeStand(t *testing.T) {
	t.Parallel()

	s := newStand(1)
	verr := MergeStand(s, StandInput{
		AreaID:    Some[uint](3),
		Name:      Some("Kanzel Eichenhang"),
		Latitude:  Some(decimal.RequireFromString("48.123456789")),
		Longitude: Some(decimal.RequireFromString("11.5")),
		BuildYear: Some(2019),
	}, fixedNow)
	require.Nil(t, verr)
	assert.Equal(t, entities.StandOther, s.Kind)
	assert.Equal(t, entities.ConditionGood, s.Condition)
	assert.True(t, s.Active)
	assert.Equal(t, "48.1234568", s.Latitude.String())

	bad := newStand(1)
	verr = MergeStand(bad, StandInput{
		Latitude:      Some(decimal.NewFromInt(91)),
		Longitude:     Some(decimal.NewFromInt(-181)),
		BuildYear:     Some(fixedNow.Year() + 2),
		Kind:          Some(entities.StandKind("tower")),
		LastInspected: Some("gestern"),
	}, fixedNow)
	require.NotNil(t, verr)
	for _, f := range []string{"area_id", "name", "latitude", "longitude", "build_year", "kind", "last_inspected"} {
		assert.Contains(t, verr.Fields, f)
	}

	next := newStand(1)
	verr = MergeStand(next, StandInput{AreaID: Some[uint](1), Name: Some("Neubau"), BuildYear: Some(fixedNow.Year() + 1)}, fixedNow)
	assert.Nil(t, verr, "next year's build year is allowed")
}

func TestMergeFirearmAndArea(t *testing.T) {
	t.Parallel()

	f := newFirearm(1)
	verr := MergeFirearm(f, FirearmInput{Name: Some("Bockbüchsflinte")})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "caliber")
	assert.Equal(t, entities.FirearmRifle, f.Kind)

	a := &entities.Area{}
	verr = MergeArea(a, AreaInput{Name: Some("  "), SizeHectares: Some(decimal.Zero)})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "size_hectares")

	a = &entities.Area{}
	require.Nil(t, MergeArea(a, AreaInput{Name: Some("Hochwald"), SizeHectares: Some(decimal.RequireFromString("120.456"))}))
	assert.Equal(t, "120.46", a.SizeHectares.String())
}

func TestMergeAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    AccountInput
		field string
	}{
		{"valid", AccountInput{Username: Some("max.mustermann"), Password: Some("geheim123")}, ""},
		{"short username", AccountInput{Username: Some("ab")}, "username"},
		{"bad characters", AccountInput{Username: Some("max mustermann")}, "username"},
		{"short password", AccountInput{Username: Some("jaeger"), Password: Some("kurz")}, "password"},
		{"null password", AccountInput{Username: Some("jaeger"), Password: Null[string]()}, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := MergeAccount(&entities.Account{}, tt.in)
			if tt.field == "" {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Contains(t, verr.Fields, tt.field)
			echoed, ok := verr.Input.(AccountInput)
			require.True(t, ok)
			assert.False(t, echoed.Password.Set, "passwords are never echoed")
		})
	}
}
