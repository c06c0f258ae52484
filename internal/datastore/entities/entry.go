package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/huntlog/huntlog/internal/species"
)

// Entry records one animal taken.
type Entry struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	AccountID     uint             `gorm:"not null;index:idx_entry_owner_date" json:"-"`
	Species       species.Code     `gorm:"size:50;not null;index" json:"species"`
	SpeciesCustom string           `gorm:"size:100" json:"species_custom"`
	Date          string           `gorm:"size:10;not null;index:idx_entry_owner_date" json:"date"`
	Time          *string          `gorm:"size:5" json:"time"`
	AreaID        *uint            `gorm:"index" json:"area_id"`
	StandID       *uint            `gorm:"index" json:"stand_id"`
	FirearmID     *uint            `gorm:"index" json:"firearm_id"`
	Sex           Sex              `gorm:"size:10;not null" json:"sex"`
	WeightKg      *decimal.Decimal `gorm:"type:decimal(6,1)" json:"weight_kg"`
	EstimatedAge  string           `gorm:"size:100" json:"estimated_age"`
	HuntingMethod string           `gorm:"size:100" json:"hunting_method"`
	ShotDistanceM *uint            `json:"shot_distance_m"`
	Notes         string           `gorm:"type:text" json:"notes"`
	Weather       string           `gorm:"size:100" json:"weather"`
	TemperatureC  *int             `json:"temperature_c"`
	TrophyKept    bool             `gorm:"not null" json:"trophy_kept"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Account *Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	Area    *Area    `gorm:"foreignKey:AreaID;constraint:OnDelete:RESTRICT" json:"area,omitempty"`
	Stand   *Stand   `gorm:"foreignKey:StandID;constraint:OnDelete:SET NULL" json:"stand,omitempty"`
	Firearm *Firearm `gorm:"foreignKey:FirearmID;constraint:OnDelete:SET NULL" json:"firearm,omitempty"`
}

// TableName returns the table name for GORM.
func (Entry) TableName() string {
	return "entries"
}

// DisplayLabel returns the human label of the entry's species.
func (e *Entry) DisplayLabel() string {
	return species.DisplayLabel(e.Species, e.SpeciesCustom)
}

// DisplayMarker returns the leading marker of the species label.
func (e *Entry) DisplayMarker() string {
	return species.DisplayMarker(e.Species, e.SpeciesCustom)
}

// Year returns the calendar year of the entry date as "YYYY", or "" when the
// date is malformed.
func (e *Entry) Year() string {
	if len(e.Date) < 4 {
		return ""
	}
	return e.Date[:4]
}

// AreaName returns the name of the loaded Area, or "".
func (e *Entry) AreaName() string {
	if e.Area == nil {
		return ""
	}
	return e.Area.Name
}

// TimeOfDay returns the time or "" when unset.
func (e *Entry) TimeOfDay() string {
	if e.Time == nil {
		return ""
	}
	return *e.Time
}

// All returns every model in migration order.
func All() []any {
	return []any{&Account{}, &Area{}, &Firearm{}, &Stand{}, &Entry{}}
}
