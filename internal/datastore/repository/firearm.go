package repository

import (
	"context"

	"github.com/huntlog/huntlog/internal/datastore/entities"
)

// FirearmRepository handles firearms.
type FirearmRepository interface {
	ListByOwner(ctx context.Context, owner uint) ([]entities.Firearm, error)
	GetByID(ctx context.Context, owner, id uint) (*entities.Firearm, error)
	Create(ctx context.Context, firearm *entities.Firearm) error
	Update(ctx context.Context, owner, id uint, mutate func(*entities.Firearm) error) (*entities.Firearm, error)
	// Delete clears the firearm reference of entries and removes the firearm.
	Delete(ctx context.Context, owner, id uint) error
}
