// Package species holds the closed game taxonomy: codes, display labels,
// summary buckets and the trophy display order.
//
// The tables are package-level data built once at init and never mutated.
package species

import "strings"

// Code identifies one species in the taxonomy.
type Code string

// Big game: deer, wild boar and mouflon.
const (
	Roebuck      Code = "roebuck"
	RoeDoe       Code = "roe_doe"
	RoeFawn      Code = "roe_fawn"
	RedStag      Code = "red_stag"
	RedHind      Code = "red_hind"
	RedCalf      Code = "red_calf"
	FallowBuck   Code = "fallow_buck"
	FallowDoe    Code = "fallow_doe"
	FallowCalf   Code = "fallow_calf"
	Boar         Code = "boar"
	Sow          Code = "sow"
	YearlingBoar Code = "yearling_boar"
	Piglet       Code = "piglet"
	Mouflon      Code = "mouflon"
)

// Small game.
const (
	Hare         Code = "hare"
	Rabbit       Code = "rabbit"
	PheasantCock Code = "pheasant_cock"
	PheasantHen  Code = "pheasant_hen"
	Partridge    Code = "partridge"
	Quail        Code = "quail"
	Pigeon       Code = "pigeon"
	Mallard      Code = "mallard"
	Goose        Code = "goose"
)

// Predators.
const (
	Fox        Code = "fox"
	Badger     Code = "badger"
	Marten     Code = "marten"
	Raccoon    Code = "raccoon"
	RaccoonDog Code = "raccoon_dog"
	Nutria     Code = "nutria"
)

// Other.
const (
	Crow   Code = "crow"
	Magpie Code = "magpie"
	Other  Code = "other"
)

// Group is a top-level section of the taxonomy.
type Group string

const (
	GroupBigGame   Group = "big-game"
	GroupSmallGame Group = "small-game"
	GroupPredator  Group = "predator"
	GroupOther     Group = "other"
)

// Bucket is a coarse summary category used for dashboard counts.
type Bucket string

const (
	BucketNone      Bucket = ""
	BucketBigGame   Bucket = "big-game"
	BucketWildBoar  Bucket = "wild-boar"
	BucketSmallGame Bucket = "small-game"
	BucketPredator  Bucket = "predator"
)

// Buckets lists the summary buckets in display order.
var Buckets = []Bucket{BucketBigGame, BucketWildBoar, BucketSmallGame, BucketPredator}

// CustomMarker prefixes free-text species and is the fallback marker.
const CustomMarker = "🎯"

// Info describes one taxonomy row.
type Info struct {
	Code   Code   `json:"code"`
	Group  Group  `json:"group"`
	Label  string `json:"label"`
	Bucket Bucket `json:"bucket,omitempty"`
}

// GroupInfo is one taxonomy section with its species in declared order.
type GroupInfo struct {
	Group   Group  `json:"group"`
	Label   string `json:"label"`
	Species []Info `json:"species"`
}

var taxonomy = []GroupInfo{
	{Group: GroupBigGame, Label: "Schalenwild", Species: []Info{
		{Code: Roebuck, Label: "🦌 Rehbock", Bucket: BucketBigGame},
		{Code: RoeDoe, Label: "🦌 Rehgeiß", Bucket: BucketBigGame},
		{Code: RoeFawn, Label: "🦌 Rehkitz", Bucket: BucketBigGame},
		{Code: RedStag, Label: "🦌 Rothirsch", Bucket: BucketBigGame},
		{Code: RedHind, Label: "🦌 Hirschkuh", Bucket: BucketBigGame},
		{Code: RedCalf, Label: "🦌 Hirschkalb", Bucket: BucketBigGame},
		{Code: FallowBuck, Label: "🦌 Damhirsch", Bucket: BucketBigGame},
		{Code: FallowDoe, Label: "🦌 Damtier", Bucket: BucketBigGame},
		{Code: FallowCalf, Label: "🦌 Damkalb", Bucket: BucketBigGame},
		{Code: Boar, Label: "🐗 Keiler", Bucket: BucketWildBoar},
		{Code: Sow, Label: "🐗 Bache", Bucket: BucketWildBoar},
		{Code: YearlingBoar, Label: "🐗 Überläufer", Bucket: BucketWildBoar},
		{Code: Piglet, Label: "🐗 Frischling", Bucket: BucketWildBoar},
		{Code: Mouflon, Label: "🐏 Mufflon", Bucket: BucketBigGame},
	}},
	{Group: GroupSmallGame, Label: "Niederwild", Species: []Info{
		{Code: Hare, Label: "🐰 Feldhase", Bucket: BucketSmallGame},
		{Code: Rabbit, Label: "🐰 Wildkaninchen", Bucket: BucketSmallGame},
		{Code: PheasantCock, Label: "🐓 Fasanhahn", Bucket: BucketSmallGame},
		{Code: PheasantHen, Label: "🐓 Fasanhenne", Bucket: BucketSmallGame},
		{Code: Partridge, Label: "🐦 Rebhuhn", Bucket: BucketSmallGame},
		{Code: Quail, Label: "🐦 Wachtel", Bucket: BucketSmallGame},
		{Code: Pigeon, Label: "🕊️ Wildtaube", Bucket: BucketSmallGame},
		{Code: Mallard, Label: "🦆 Stockente", Bucket: BucketSmallGame},
		{Code: Goose, Label: "🪿 Wildgans", Bucket: BucketSmallGame},
	}},
	{Group: GroupPredator, Label: "Raubwild", Species: []Info{
		{Code: Fox, Label: "🦊 Fuchs", Bucket: BucketPredator},
		{Code: Badger, Label: "🦡 Dachs", Bucket: BucketPredator},
		{Code: Marten, Label: "🐾 Marder", Bucket: BucketPredator},
		{Code: Raccoon, Label: "🦝 Waschbär", Bucket: BucketPredator},
		{Code: RaccoonDog, Label: "🐕 Marderhund", Bucket: BucketPredator},
		{Code: Nutria, Label: "🦫 Nutria", Bucket: BucketPredator},
	}},
	{Group: GroupOther, Label: "Sonstiges", Species: []Info{
		{Code: Crow, Label: "🐦‍⬛ Krähe"},
		{Code: Magpie, Label: "🐦 Elster"},
		{Code: Other, Label: "🎯 Sonstiges"},
	}},
}

// trophyTail ranks the remaining named codes after the four buckets.
var trophyTail = []Code{Crow, Magpie, Other}

// trophyBucketOrder is the bucket priority for the trophy list.
var trophyBucketOrder = []Bucket{BucketBigGame, BucketWildBoar, BucketPredator, BucketSmallGame}

var (
	byCode     map[Code]Info
	all        []Info
	trophyRank map[Code]int
)

func init() {
	byCode = make(map[Code]Info)
	for gi := range taxonomy {
		g := &taxonomy[gi]
		for i := range g.Species {
			g.Species[i].Group = g.Group
			info := g.Species[i]
			byCode[info.Code] = info
			all = append(all, info)
		}
	}

	trophyRank = make(map[Code]int, len(all))
	rank := 0
	for _, b := range trophyBucketOrder {
		for _, info := range all {
			if info.Bucket == b {
				trophyRank[info.Code] = rank
				rank++
			}
		}
	}
	for _, c := range trophyTail {
		trophyRank[c] = rank
		rank++
	}
}

// All returns every species in declared order.
func All() []Info {
	out := make([]Info, len(all))
	copy(out, all)
	return out
}

// Groups returns the taxonomy sections in declared order.
func Groups() []GroupInfo {
	out := make([]GroupInfo, len(taxonomy))
	for i, g := range taxonomy {
		out[i] = GroupInfo{Group: g.Group, Label: g.Label, Species: append([]Info(nil), g.Species...)}
	}
	return out
}

// Lookup returns the taxonomy row for code.
func Lookup(code Code) (Info, bool) {
	info, ok := byCode[code]
	return info, ok
}

// Known reports whether code is part of the taxonomy.
func Known(code Code) bool {
	_, ok := byCode[code]
	return ok
}

// Valid reports whether the pair is an acceptable species for an entry.
// "other" requires non-empty custom text; every other known code is valid.
func Valid(code Code, custom string) bool {
	if code == Other {
		return strings.TrimSpace(custom) != ""
	}
	return Known(code)
}

// DisplayLabel returns the human label. Unknown codes degrade to the raw code.
func DisplayLabel(code Code, custom string) string {
	if code == Other && custom != "" {
		return CustomMarker + " " + custom
	}
	if info, ok := byCode[code]; ok {
		return info.Label
	}
	return string(code)
}

// DisplayMarker returns the leading token of the label, or CustomMarker when
// the label is empty.
func DisplayMarker(code Code, custom string) string {
	fields := strings.Fields(DisplayLabel(code, custom))
	if len(fields) == 0 {
		return CustomMarker
	}
	return fields[0]
}

// BucketOf returns the summary bucket of code, or BucketNone.
func BucketOf(code Code) Bucket {
	return byCode[code].Bucket
}

// TrophyRank returns the position of code in the trophy display order.
// ok is false for codes outside the ranking, which sort last.
func TrophyRank(code Code) (rank int, ok bool) {
	rank, ok = trophyRank[code]
	return rank, ok
}
