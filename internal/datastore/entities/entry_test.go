package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huntlog/huntlog/internal/species"
)

func TestEntryHelpers(t *testing.T) {
	t.Parallel()

	tm := "18:45"
	e := Entry{Species: species.Fox, Date: "2024-11-02", Time: &tm, Area: &Area{Name: "Hochwald"}}

	assert.Equal(t, "🦊 Fuchs", e.DisplayLabel())
	assert.Equal(t, "🦊", e.DisplayMarker())
	assert.Equal(t, "2024", e.Year())
	assert.Equal(t, "Hochwald", e.AreaName())
	assert.Equal(t, "18:45", e.TimeOfDay())

	empty := Entry{Species: species.Other, SpeciesCustom: "Steinmarder"}
	assert.Contains(t, empty.DisplayLabel(), "Steinmarder")
	assert.Empty(t, empty.Year())
	assert.Empty(t, empty.AreaName())
	assert.Empty(t, empty.TimeOfDay())
}

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	assert.True(t, StandDriveHunt.Valid())
	assert.False(t, StandKind("tower").Valid())
	assert.True(t, ConditionNeedsRepair.Valid())
	assert.False(t, StandCondition("broken").Valid())
	assert.True(t, FirearmDrilling.Valid())
	assert.False(t, FirearmKind("bow").Valid())
	assert.True(t, SexUnknown.Valid())
	assert.False(t, Sex("").Valid())
}
