package entities

import "time"

// Firearm is a weapon and caliber combination usable across many entries.
type Firearm struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	AccountID     uint        `gorm:"not null;index" json:"-"`
	Name          string      `gorm:"size:200;not null" json:"name"`
	Kind          FirearmKind `gorm:"size:30;not null" json:"kind"`
	Manufacturer  string      `gorm:"size:100" json:"manufacturer"`
	Model         string      `gorm:"size:100" json:"model"`
	SerialNumber  string      `gorm:"size:100" json:"serial_number"`
	Caliber       string      `gorm:"size:50;not null" json:"caliber"`
	PurchaseDate  *string     `gorm:"size:10" json:"purchase_date"`
	LicenseNumber string      `gorm:"size:100" json:"license_number"`
	Notes         string      `gorm:"type:text" json:"notes"`
	Active        bool        `gorm:"not null" json:"active"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationship
	Account *Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for GORM.
func (Firearm) TableName() string {
	return "firearms"
}
