package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stand is a fixed hunting structure inside one Area.
type Stand struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	AccountID     uint             `gorm:"not null;index" json:"-"`
	AreaID        uint             `gorm:"not null;index" json:"area_id"`
	Name          string           `gorm:"size:200;not null" json:"name"`
	Kind          StandKind        `gorm:"size:30;not null" json:"kind"`
	Description   string           `gorm:"type:text" json:"description"`
	Latitude      *decimal.Decimal `gorm:"type:decimal(10,7)" json:"latitude"`
	Longitude     *decimal.Decimal `gorm:"type:decimal(10,7)" json:"longitude"`
	Condition     StandCondition   `gorm:"size:20;not null" json:"condition"`
	BuildYear     *int             `json:"build_year"`
	LastInspected *string          `gorm:"size:10" json:"last_inspected"`
	Notes         string           `gorm:"type:text" json:"notes"`
	Active        bool             `gorm:"not null" json:"active"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Account *Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	Area    *Area    `gorm:"foreignKey:AreaID;constraint:OnDelete:RESTRICT" json:"area,omitempty"`
}

// TableName returns the table name for GORM.
func (Stand) TableName() string {
	return "stands"
}
