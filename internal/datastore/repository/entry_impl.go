package repository

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"github.com/huntlog/huntlog/internal/datastore/entities"
)

// entryRepository implements EntryRepository.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) owned(ctx context.Context, owner uint) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Area").Where("account_id = ?", owner).Order(entryOrder)
}

func (r *entryRepository) ListByOwner(ctx context.Context, owner uint) ([]entities.Entry, error) {
	var entries []entities.Entry
	err := r.owned(ctx, owner).Find(&entries).Error
	return entries, err
}

func (r *entryRepository) ListByDateRange(ctx context.Context, owner uint, from, to string) ([]entities.Entry, error) {
	var entries []entities.Entry
	err := r.owned(ctx, owner).
		Where("date >= ? AND date <= ?", from, to).
		Find(&entries).Error
	return entries, err
}

func (r *entryRepository) Recent(ctx context.Context, owner uint, limit int) ([]entities.Entry, error) {
	var entries []entities.Entry
	err := r.owned(ctx, owner).Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *entryRepository) GetByID(ctx context.Context, owner, id uint) (*entities.Entry, error) {
	var entry entities.Entry
	err := r.db.WithContext(ctx).
		Preload("Area").Preload("Stand").Preload("Firearm").
		Where("account_id = ? AND id = ?", owner, id).
		First(&entry).Error
	if err != nil {
		return nil, translate(err, ErrEntryNotFound)
	}
	return &entry, nil
}

func (r *entryRepository) Create(ctx context.Context, entry *entities.Entry) error {
	return createOwned(ctx, r.db, entry, checkEntryRefs)
}

func (r *entryRepository) Update(ctx context.Context, owner, id uint, mutate func(*entities.Entry) error) (*entities.Entry, error) {
	return updateOwned(ctx, r.db, tableEntries, owner, id, ErrEntryNotFound, mutate, checkEntryRefs)
}

func (r *entryRepository) Delete(ctx context.Context, owner, id uint) error {
	return deleteOwned(ctx, r.db, tableEntries, &entities.Entry{}, owner, id, ErrEntryNotFound, nil)
}

func (r *entryRepository) DistinctYears(ctx context.Context, owner uint) ([]int, error) {
	var rows []struct{ Year string }
	err := r.db.WithContext(ctx).
		Raw("SELECT DISTINCT SUBSTR(date, 1, 4) AS year FROM "+tableEntries+" WHERE account_id = ? ORDER BY year DESC", owner).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	years := make([]int, 0, len(rows))
	for _, row := range rows {
		if y, err := strconv.Atoi(row.Year); err == nil {
			years = append(years, y)
		}
	}
	return years, nil
}

func (r *entryRepository) Count(ctx context.Context, owner uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table(tableEntries).Where("account_id = ?", owner).Count(&n).Error
	return n, err
}

func (r *entryRepository) CountByArea(ctx context.Context, owner, area uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table(tableEntries).
		Where("account_id = ? AND area_id = ?", owner, area).
		Count(&n).Error
	return n, err
}

// checkEntryRefs verifies every set reference belongs to the entry's owner.
func checkEntryRefs(tx *gorm.DB, entry *entities.Entry) error {
	refs := []struct {
		field string
		table string
		id    *uint
	}{
		{"area", tableAreas, entry.AreaID},
		{"stand", tableStands, entry.StandID},
		{"firearm", tableFirearms, entry.FirearmID},
	}
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		ok, err := existsOwned(tx, ref.table, entry.AccountID, *ref.id)
		if err != nil {
			return err
		}
		if !ok {
			return &ReferenceError{Field: ref.field, ID: *ref.id}
		}
	}
	return nil
}
