package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/huntlog/huntlog/internal/errors"
)

// translate maps gorm errors to repository sentinels.
func translate(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	}
	return err
}

// getOwned loads the record id owned by owner into dest.
func getOwned(ctx context.Context, db *gorm.DB, table string, owner, id uint, dest any, notFound error) error {
	err := db.WithContext(ctx).Table(table).
		Where("account_id = ? AND id = ?", owner, id).
		First(dest).Error
	return translate(err, notFound)
}

// existsOwned reports whether table holds record id for owner.
func existsOwned(tx *gorm.DB, table string, owner, id uint) (bool, error) {
	var n int64
	err := tx.Table(table).Where("account_id = ? AND id = ?", owner, id).Count(&n).Error
	return n > 0, err
}

// updateOwned runs a read-modify-write of one owned record in a transaction.
// check runs inside the transaction after mutate and before the write.
func updateOwned[T any](ctx context.Context, db *gorm.DB, table string, owner, id uint, notFound error,
	mutate func(*T) error, check func(tx *gorm.DB, rec *T) error,
) (*T, error) {
	var rec T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(table).Where("account_id = ? AND id = ?", owner, id).First(&rec).Error; err != nil {
			return translate(err, notFound)
		}
		if err := mutate(&rec); err != nil {
			return err
		}
		if check != nil {
			if err := check(tx, &rec); err != nil {
				return err
			}
		}
		return translate(tx.Omit(clause.Associations).Save(&rec).Error, notFound)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// createOwned inserts rec after check passes, in one transaction.
func createOwned[T any](ctx context.Context, db *gorm.DB, rec *T, check func(tx *gorm.DB, rec *T) error) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if check != nil {
			if err := check(tx, rec); err != nil {
				return err
			}
		}
		return translate(tx.Omit(clause.Associations).Create(rec).Error, nil)
	})
}

// deleteOwned deletes record id of owner; before runs first in the same
// transaction and may veto the delete or clear references.
func deleteOwned(ctx context.Context, db *gorm.DB, table string, model any, owner, id uint, notFound error,
	before func(tx *gorm.DB) error,
) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := existsOwned(tx, table, owner, id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound
		}
		if before != nil {
			if err := before(tx); err != nil {
				return err
			}
		}
		return tx.Where("account_id = ? AND id = ?", owner, id).Delete(model).Error
	})
}
