package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/huntlog/huntlog/internal/datastore/entities"
)

// areaRepository implements AreaRepository.
type areaRepository struct {
	db *gorm.DB
}

// NewAreaRepository creates a new AreaRepository.
func NewAreaRepository(db *gorm.DB) AreaRepository {
	return &areaRepository{db: db}
}

func (r *areaRepository) ListByOwner(ctx context.Context, owner uint) ([]entities.Area, error) {
	var areas []entities.Area
	err := r.db.WithContext(ctx).
		Where("account_id = ?", owner).
		Order("name").
		Find(&areas).Error
	return areas, err
}

func (r *areaRepository) GetByID(ctx context.Context, owner, id uint) (*entities.Area, error) {
	var area entities.Area
	if err := getOwned(ctx, r.db, tableAreas, owner, id, &area, ErrAreaNotFound); err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *areaRepository) ExistsName(ctx context.Context, owner uint, name string, excludeID uint) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Table(tableAreas).Where("account_id = ? AND name = ?", owner, name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *areaRepository) Create(ctx context.Context, area *entities.Area) error {
	return createOwned(ctx, r.db, area, nil)
}

func (r *areaRepository) Update(ctx context.Context, owner, id uint, mutate func(*entities.Area) error) (*entities.Area, error) {
	return updateOwned(ctx, r.db, tableAreas, owner, id, ErrAreaNotFound, mutate, nil)
}

func (r *areaRepository) Delete(ctx context.Context, owner, id uint) error {
	return deleteOwned(ctx, r.db, tableAreas, &entities.Area{}, owner, id, ErrAreaNotFound, func(tx *gorm.DB) error {
		var inUse InUseError
		if err := tx.Table(tableStands).Where("area_id = ?", id).Count(&inUse.Stands).Error; err != nil {
			return err
		}
		if err := tx.Table(tableEntries).Where("area_id = ?", id).Count(&inUse.Entries).Error; err != nil {
			return err
		}
		if inUse.Stands > 0 || inUse.Entries > 0 {
			return &inUse
		}
		return nil
	})
}
