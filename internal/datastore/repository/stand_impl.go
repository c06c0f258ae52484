package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/huntlog/huntlog/internal/datastore/entities"
)

// standRepository implements StandRepository.
type standRepository struct {
	db *gorm.DB
}

// NewStandRepository creates a new StandRepository.
func NewStandRepository(db *gorm.DB) StandRepository {
	return &standRepository{db: db}
}

func (r *standRepository) ListByOwner(ctx context.Context, owner, areaID uint) ([]entities.Stand, error) {
	var stands []entities.Stand
	q := r.db.WithContext(ctx).Preload("Area").Where("account_id = ?", owner)
	if areaID != 0 {
		q = q.Where("area_id = ?", areaID)
	}
	err := q.Order("name").Find(&stands).Error
	return stands, err
}

func (r *standRepository) GetByID(ctx context.Context, owner, id uint) (*entities.Stand, error) {
	var stand entities.Stand
	err := r.db.WithContext(ctx).Preload("Area").
		Where("account_id = ? AND id = ?", owner, id).
		First(&stand).Error
	if err != nil {
		return nil, translate(err, ErrStandNotFound)
	}
	return &stand, nil
}

func (r *standRepository) Create(ctx context.Context, stand *entities.Stand) error {
	return createOwned(ctx, r.db, stand, checkStandRefs)
}

func (r *standRepository) Update(ctx context.Context, owner, id uint, mutate func(*entities.Stand) error) (*entities.Stand, error) {
	return updateOwned(ctx, r.db, tableStands, owner, id, ErrStandNotFound, mutate, checkStandRefs)
}

func (r *standRepository) Delete(ctx context.Context, owner, id uint) error {
	return deleteOwned(ctx, r.db, tableStands, &entities.Stand{}, owner, id, ErrStandNotFound, func(tx *gorm.DB) error {
		return tx.Model(&entities.Entry{}).
			Where("account_id = ? AND stand_id = ?", owner, id).
			UpdateColumn("stand_id", nil).Error
	})
}

// checkStandRefs verifies the stand's area belongs to the stand's owner.
func checkStandRefs(tx *gorm.DB, stand *entities.Stand) error {
	ok, err := existsOwned(tx, tableAreas, stand.AccountID, stand.AreaID)
	if err != nil {
		return err
	}
	if !ok {
		return &ReferenceError{Field: "area", ID: stand.AreaID}
	}
	return nil
}
