package entities

import "time"

// Account is a login identity. Administrators manage accounts; they do not
// see other accounts' hunting data.
type Account struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"size:150;not null;uniqueIndex" json:"username"`
	PasswordHash string     `gorm:"size:100;not null" json:"-"`
	IsAdmin      bool       `gorm:"not null" json:"is_admin"`
	Active       bool       `gorm:"not null" json:"active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for GORM.
func (Account) TableName() string {
	return "accounts"
}
