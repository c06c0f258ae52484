package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Area is a hunting ground or lease. Names are unique per account.
type Area struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	AccountID    uint             `gorm:"not null;uniqueIndex:idx_area_owner_name" json:"-"`
	Name         string           `gorm:"size:200;not null;uniqueIndex:idx_area_owner_name" json:"name"`
	Description  string           `gorm:"type:text" json:"description"`
	SizeHectares *decimal.Decimal `gorm:"type:decimal(10,2)" json:"size_hectares"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationship
	Account *Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM.
func (Area) TableName() string {
	return "areas"
}
