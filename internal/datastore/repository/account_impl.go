package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/huntlog/huntlog/internal/datastore/entities"
)

// accountRepository implements AccountRepository.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) List(ctx context.Context) ([]entities.Account, error) {
	var accounts []entities.Account
	err := r.db.WithContext(ctx).Order("username").Find(&accounts).Error
	return accounts, err
}

func (r *accountRepository) GetByID(ctx context.Context, id uint) (*entities.Account, error) {
	var account entities.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, translate(err, ErrAccountNotFound)
	}
	return &account, nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*entities.Account, error) {
	var account entities.Account
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error
	if err != nil {
		return nil, translate(err, ErrAccountNotFound)
	}
	return &account, nil
}

func (r *accountRepository) Create(ctx context.Context, account *entities.Account) error {
	return translate(r.db.WithContext(ctx).Create(account).Error, nil)
}

func (r *accountRepository) Update(ctx context.Context, id uint, mutate func(*entities.Account) error) (*entities.Account, error) {
	var account entities.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&account, id).Error; err != nil {
			return translate(err, ErrAccountNotFound)
		}
		if err := mutate(&account); err != nil {
			return err
		}
		return translate(tx.Omit(clause.Associations).Save(&account).Error, ErrAccountNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Delete removes owned rows child-first so the cascade does not depend on
// engine support for ON DELETE CASCADE.
func (r *accountRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Table(tableAccounts).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrAccountNotFound
		}
		for _, model := range []any{&entities.Entry{}, &entities.Stand{}, &entities.Firearm{}, &entities.Area{}} {
			if err := tx.Where("account_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&entities.Account{}, id).Error
	})
}

func (r *accountRepository) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table(tableAccounts).
		Where("is_admin = ? AND active = ?", true, true).
		Count(&n).Error
	return n, err
}

func (r *accountRepository) TouchLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.Account{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}
