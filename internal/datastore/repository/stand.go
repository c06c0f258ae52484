package repository

import (
	"context"

	"github.com/huntlog/huntlog/internal/datastore/entities"
)

// StandRepository handles hunting stands.
type StandRepository interface {
	// ListByOwner returns the owner's stands with their Area loaded. A
	// non-zero areaID restricts the list to that area.
	ListByOwner(ctx context.Context, owner, areaID uint) ([]entities.Stand, error)
	GetByID(ctx context.Context, owner, id uint) (*entities.Stand, error)
	// Create fails with *ReferenceError when the area is not the owner's.
	Create(ctx context.Context, stand *entities.Stand) error
	Update(ctx context.Context, owner, id uint, mutate func(*entities.Stand) error) (*entities.Stand, error)
	// Delete clears the stand reference of entries and removes the stand.
	Delete(ctx context.Context, owner, id uint) error
}
