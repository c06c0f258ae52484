package repository

import (
	"context"

	"github.com/huntlog/huntlog/internal/datastore/entities"
)

// AreaRepository handles hunting grounds.
type AreaRepository interface {
	ListByOwner(ctx context.Context, owner uint) ([]entities.Area, error)
	GetByID(ctx context.Context, owner, id uint) (*entities.Area, error)
	// ExistsName reports whether owner has another area called name.
	// excludeID skips the area being renamed; pass 0 on create.
	ExistsName(ctx context.Context, owner uint, name string, excludeID uint) (bool, error)
	Create(ctx context.Context, area *entities.Area) error
	Update(ctx context.Context, owner, id uint, mutate func(*entities.Area) error) (*entities.Area, error)
	// Delete fails with *InUseError while stands or entries reference the area.
	Delete(ctx context.Context, owner, id uint) error
}
