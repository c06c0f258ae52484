package species

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		code   Code
		custom string
		want   string
	}{
		{"known code", Roebuck, "", "🦌 Rehbock"},
		{"custom text ignored for known code", Fox, "Steinmarder", "🦊 Fuchs"},
		{"other with custom text", Other, "Steinmarder", "🎯 Steinmarder"},
		{"other without custom text", Other, "", "🎯 Sonstiges"},
		{"unknown code", Code("xyz"), "", "xyz"},
		{"empty code", Code(""), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DisplayLabel(tt.code, tt.custom))
		})
	}
}

func TestDisplayMarker(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "🦊", DisplayMarker(Fox, ""))
	assert.Equal(t, "🐗", DisplayMarker(Piglet, ""))
	assert.Equal(t, CustomMarker, DisplayMarker(Other, "Steinmarder"))
	assert.Equal(t, "xyz", DisplayMarker(Code("xyz"), ""))
	assert.Equal(t, CustomMarker, DisplayMarker(Code(""), ""))
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Valid(Hare, ""))
	assert.True(t, Valid(Other, "Steinmarder"))
	assert.False(t, Valid(Other, "   "))
	assert.False(t, Valid(Code("wolf"), "Wolf"))
	assert.False(t, Valid(Code(""), ""))
}

func TestBucketsAreDisjoint(t *testing.T) {
	t.Parallel()

	counts := make(map[Bucket]int)
	for _, info := range All() {
		counts[BucketOf(info.Code)]++
	}

	assert.Equal(t, 10, counts[BucketBigGame])
	assert.Equal(t, 4, counts[BucketWildBoar])
	assert.Equal(t, 9, counts[BucketSmallGame])
	assert.Equal(t, 6, counts[BucketPredator])
	assert.Equal(t, 3, counts[BucketNone])
	assert.Equal(t, BucketNone, BucketOf(Code("xyz")))
}

func TestTrophyRankOrder(t *testing.T) {
	t.Parallel()

	rank := func(c Code) int {
		r, ok := TrophyRank(c)
		require.True(t, ok, "code %s is ranked", c)
		return r
	}

	assert.Less(t, rank(Roebuck), rank(Mouflon))
	assert.Less(t, rank(Mouflon), rank(Boar), "big game before wild boar")
	assert.Less(t, rank(Piglet), rank(Fox), "wild boar before predators")
	assert.Less(t, rank(Nutria), rank(Hare), "predators before small game")
	assert.Less(t, rank(Goose), rank(Crow), "small game before the tail")
	assert.Less(t, rank(Magpie), rank(Other))

	_, ok := TrophyRank(Code("xyz"))
	assert.False(t, ok)

	seen := make(map[int]Code)
	for _, info := range All() {
		r := rank(info.Code)
		prev, dup := seen[r]
		assert.False(t, dup, "rank %d shared by %s and %s", r, prev, info.Code)
		seen[r] = info.Code
	}
}

func TestGroupsAreCopies(t *testing.T) {
	t.Parallel()

	groups := Groups()
	require.Len(t, groups, 4)
	assert.Equal(t, GroupBigGame, groups[0].Group)
	assert.Equal(t, "Schalenwild", groups[0].Label)
	assert.Equal(t, GroupBigGame, groups[0].Species[0].Group)

	groups[0].Species[0].Label = "changed"
	info, ok := Lookup(Roebuck)
	require.True(t, ok)
	assert.Equal(t, "🦌 Rehbock", info.Label)
}
