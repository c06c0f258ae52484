package entities

// StandKind is the construction type of a hunting stand.
type StandKind string

const (
	StandBlind     StandKind = "blind"
	StandLadder    StandKind = "ladder"
	StandDriveHunt StandKind = "drive-hunt-stand"
	StandScreen    StandKind = "screen"
	StandOther     StandKind = "other"
)

// StandKinds lists every stand kind in display order.
var StandKinds = []StandKind{StandBlind, StandLadder, StandDriveHunt, StandScreen, StandOther}

// Valid reports whether k is a known stand kind.
func (k StandKind) Valid() bool {
	return oneOf(k, StandKinds)
}

// StandCondition describes the state of repair of a stand.
type StandCondition string

const (
	ConditionGood        StandCondition = "good"
	ConditionNeedsRepair StandCondition = "needs-repair"
	ConditionPoor        StandCondition = "poor"
	ConditionNew         StandCondition = "new"
)

// StandConditions lists every stand condition in display order.
var StandConditions = []StandCondition{ConditionGood, ConditionNeedsRepair, ConditionPoor, ConditionNew}

// Valid reports whether c is a known condition.
func (c StandCondition) Valid() bool {
	return oneOf(c, StandConditions)
}

// FirearmKind is the weapon category.
type FirearmKind string

const (
	FirearmRifle       FirearmKind = "rifle"
	FirearmShotgun     FirearmKind = "shotgun"
	FirearmCombination FirearmKind = "combination-gun"
	FirearmDrilling    FirearmKind = "drilling"
	FirearmHandgun     FirearmKind = "handgun"
	FirearmOther       FirearmKind = "other"
)

// FirearmKinds lists every firearm kind in display order.
var FirearmKinds = []FirearmKind{FirearmRifle, FirearmShotgun, FirearmCombination, FirearmDrilling, FirearmHandgun, FirearmOther}

// Valid reports whether k is a known firearm kind.
func (k FirearmKind) Valid() bool {
	return oneOf(k, FirearmKinds)
}

// Sex of the animal taken.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// Sexes lists every sex value.
var Sexes = []Sex{SexMale, SexFemale, SexUnknown}

// Valid reports whether s is a known value.
func (s Sex) Valid() bool {
	return oneOf(s, Sexes)
}

func oneOf[T comparable](v T, set []T) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
