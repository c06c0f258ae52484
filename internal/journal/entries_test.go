package journal

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/errors"
	"github.com/huntlog/huntlog/internal/query"
	"github.com/huntlog/huntlog/internal/species"
)

func TestCreateEntryValidation(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	in := EntryInput{Notes: Some("Ansitz am Abend")}
	_, err := h.svc.CreateEntry(ctx, h.hunter, in)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "species")
	assert.Contains(t, verr.Fields, "date")
	assert.Equal(t, in, verr.Input, "input is echoed for redisplay")
	assert.True(t, errors.IsCategory(err, errors.CategoryValidation))

	n, err := h.repos.Entries.Count(ctx, h.hunter.ID)
	require.NoError(t, err)
	assert.Zero(t, n, "nothing is persisted")
	assert.Equal(t, 1, h.recorder.ErrorCount(opCreateEntry, string(errors.CategoryValidation)))
}

func TestCreateEntryResolvesReferences(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	area := h.area(t, h.hunter, "Hochwald")
	rifle, err := h.svc.CreateFirearm(ctx, h.hunter, FirearmInput{Name: Some("Repetierer"), Caliber: Some(".308 Win")})
	require.NoError(t, err)

	e := h.entry(t, h.hunter, EntryInput{
		Species:    Some(species.Roebuck),
		Date:       Some("2024-05-12"),
		Time:       Some("05:40"),
		AreaID:     Some(area.ID),
		FirearmID:  Some(rifle.ID),
		WeightKg:   Some(decimal.RequireFromString("16.8")),
		TrophyKept: Some(true),
	})

	assert.Equal(t, h.hunter.ID, e.AccountID)
	assert.Equal(t, "Hochwald", e.AreaName())
	require.NotNil(t, e.Firearm)
	assert.Equal(t, "Repetierer", e.Firearm.Name)
	assert.True(t, e.TrophyKept)
	assert.Equal(t, entities.SexUnknown, e.Sex)
}

func TestEntryForeignReference(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	ctx := context.Background()

	foreign := h.area(t, h.other, "Nachbarrevier")
	in := EntryInput{Species: Some(species.Fox), Date: Some("2024-01-05"), AreaID: Some(foreign.ID)}
	_, err := h.svc.CreateEntry(ctx, h.hunter, in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "area_id")
	assert.Equal(t, in, verr.Input, "rejected input is kept for re-display")
	assert.Equal(t, 1, h.recorder.ErrorCount(opCreateEntry, "validation"))

	e := h.entry(t, h.hunter, EntryInput{Species: Some(species.Fox), Date: Some("2024-01-06")})
	update := EntryInput{AreaID: Some(foreign.ID), Notes: Some("am Waldrand")}
	_, err = h.svc.UpdateEntry(ctx, h.hunter, e.ID, update)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "area_id")
	assert.Equal(t, update, verr.Input)

	stored, err := h.svc.GetEntry(ctx, h.hunter, e.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.AreaID)
	assert.Empty(t, stored.Notes)
}

func TestUpdateEntryPartial(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	e := h.entry(t, h.hunter, EntryInput{
		Species: Some(species.Boar), Date: Some("2024-12-07"), Time: Some("22:15"), Notes: Some("Drückjagd"),
	})

	updated, err := h.svc.UpdateEntry(ctx, h.hunter, e.ID, EntryInput{Time: Null[string](), Sex: Some(entities.SexFemale)})
	require.NoError(t, err)
	assert.Nil(t, updated.Time)
	assert.Equal(t, entities.SexFemale, updated.Sex)
	assert.Equal(t, "Drückjagd", updated.Notes)
	assert.Equal(t, species.Boar, updated.Species)

	_, err = h.svc.UpdateEntry(ctx, h.hunter, e.ID, EntryInput{Date: Some("")})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	stored, err := h.svc.GetEntry(ctx, h.hunter, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-07", stored.Date, "rejected update leaves the record unchanged")
}

func TestEntryOwnership(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	e := h.entry(t, h.hunter, EntryInput{Species: Some(species.Hare), Date: Some("2023-11-04")})

	_, err := h.svc.GetEntry(ctx, h.other, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, errors.IsNotFound(err))

	_, err = h.svc.UpdateEntry(ctx, h.other, e.ID, EntryInput{Notes: Some("fremd")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, h.svc.DeleteEntry(ctx, h.other, e.ID), ErrNotFound)

	_, err = h.svc.GetEntry(ctx, nil, e.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, h.svc.DeleteEntry(ctx, h.hunter, e.ID))
	_, err = h.svc.GetEntry(ctx, h.hunter, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEntries(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	area := h.area(t, h.hunter, "Feldmark")
	h.entry(t, h.hunter, EntryInput{Species: Some(species.Hare), Date: Some("2022-10-20"), AreaID: Some(area.ID)})
	h.entry(t, h.hunter, EntryInput{Species: Some(species.Fox), Date: Some("2023-02-11")})
	h.entry(t, h.hunter, EntryInput{Species: Some(species.Roebuck), Date: Some("2023-06-01"), WeightKg: Some(decimal.NewFromInt(18))})
	h.entry(t, h.hunter, EntryInput{Species: Some(species.Boar), Date: Some("2024-01-15"), WeightKg: Some(decimal.NewFromInt(62))})
	h.entry(t, h.other, EntryInput{Species: Some(species.Fox), Date: Some("2023-03-01")})

	list, err := h.svc.ListEntries(ctx, h.hunter, query.Params{Year: 2023})
	require.NoError(t, err)
	require.Len(t, list.Entries, 2)
	for _, e := range list.Entries {
		assert.Equal(t, "2023", e.Year())
	}
	assert.Equal(t, []int{2024, 2023, 2022}, list.Years)
	require.Len(t, list.Areas, 1)

	list, err = h.svc.ListEntries(ctx, h.hunter, query.Params{Sort: query.SortWeightDesc})
	require.NoError(t, err)
	require.Len(t, list.Entries, 4)
	assert.Equal(t, species.Boar, list.Entries[0].Species)
	assert.Equal(t, species.Roebuck, list.Entries[1].Species)

	list, err = h.svc.ListEntries(ctx, h.hunter, query.Params{AreaID: area.ID, Sort: "bogus"})
	require.NoError(t, err)
	require.Len(t, list.Entries, 1)
	assert.Equal(t, query.SortDateDesc, list.Params.Sort)
}
