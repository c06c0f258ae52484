package repository

import "gorm.io/gorm"

// Repositories bundles every repository over one connection.
type Repositories struct {
	Accounts AccountRepository
	Areas    AreaRepository
	Stands   StandRepository
	Firearms FirearmRepository
	Entries  EntryRepository
}

// New creates all repositories for db.
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Accounts: NewAccountRepository(db),
		Areas:    NewAreaRepository(db),
		Stands:   NewStandRepository(db),
		Firearms: NewFirearmRepository(db),
		Entries:  NewEntryRepository(db),
	}
}
