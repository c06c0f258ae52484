package repository

import (
	"context"

	"github.com/huntlog/huntlog/internal/datastore/entities"
)

// EntryRepository handles journal entries. Lists use the default entry
// ordering and load the referenced Area.
type EntryRepository interface {
	ListByOwner(ctx context.Context, owner uint) ([]entities.Entry, error)
	// ListByDateRange returns entries dated within [from, to], both YYYY-MM-DD.
	ListByDateRange(ctx context.Context, owner uint, from, to string) ([]entities.Entry, error)
	Recent(ctx context.Context, owner uint, limit int) ([]entities.Entry, error)
	// GetByID loads the entry with Area, Stand and Firearm.
	GetByID(ctx context.Context, owner, id uint) (*entities.Entry, error)
	// Create fails with *ReferenceError when a referenced record is not the owner's.
	Create(ctx context.Context, entry *entities.Entry) error
	Update(ctx context.Context, owner, id uint, mutate func(*entities.Entry) error) (*entities.Entry, error)
	Delete(ctx context.Context, owner, id uint) error
	// DistinctYears returns the years with entries, newest first.
	DistinctYears(ctx context.Context, owner uint) ([]int, error)
	// CountByArea returns how many of the owner's entries reference area.
	CountByArea(ctx context.Context, owner, area uint) (int64, error)
	Count(ctx context.Context, owner uint) (int64, error)
}
