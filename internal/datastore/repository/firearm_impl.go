package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/huntlog/huntlog/internal/datastore/entities"
)

// firearmRepository implements FirearmRepository.
type firearmRepository struct {
	db *gorm.DB
}

// NewFirearmRepository creates a new FirearmRepository.
func NewFirearmRepository(db *gorm.DB) FirearmRepository {
	return &firearmRepository{db: db}
}

func (r *firearmRepository) ListByOwner(ctx context.Context, owner uint) ([]entities.Firearm, error) {
	var firearms []entities.Firearm
	err := r.db.WithContext(ctx).
		Where("account_id = ?", owner).
		Order("active DESC, name").
		Find(&firearms).Error
	return firearms, err
}

func (r *firearmRepository) GetByID(ctx context.Context, owner, id uint) (*entities.Firearm, error) {
	var firearm entities.Firearm
	if err := getOwned(ctx, r.db, tableFirearms, owner, id, &firearm, ErrFirearmNotFound); err != nil {
		return nil, err
	}
	return &firearm, nil
}

func (r *firearmRepository) Create(ctx context.Context, firearm *entities.Firearm) error {
	return createOwned(ctx, r.db, firearm, nil)
}

func (r *firearmRepository) Update(ctx context.Context, owner, id uint, mutate func(*entities.Firearm) error) (*entities.Firearm, error) {
	return updateOwned(ctx, r.db, tableFirearms, owner, id, ErrFirearmNotFound, mutate, nil)
}

func (r *firearmRepository) Delete(ctx context.Context, owner, id uint) error {
	return deleteOwned(ctx, r.db, tableFirearms, &entities.Firearm{}, owner, id, ErrFirearmNotFound, func(tx *gorm.DB) error {
		return tx.Model(&entities.Entry{}).
			Where("account_id = ? AND firearm_id = ?", owner, id).
			UpdateColumn("firearm_id", nil).Error
	})
}
