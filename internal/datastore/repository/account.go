package repository

import (
	"context"
	"time"

	"github.com/huntlog/huntlog/internal/datastore/entities"
)

// AccountRepository handles login identities.
type AccountRepository interface {
	List(ctx context.Context) ([]entities.Account, error)
	GetByID(ctx context.Context, id uint) (*entities.Account, error)
	GetByUsername(ctx context.Context, username string) (*entities.Account, error)
	Create(ctx context.Context, account *entities.Account) error
	Update(ctx context.Context, id uint, mutate func(*entities.Account) error) (*entities.Account, error)
	// Delete removes the account and all hunting data it owns.
	Delete(ctx context.Context, id uint) error
	CountAdmins(ctx context.Context) (int64, error)
	TouchLogin(ctx context.Context, id uint, at time.Time) error
}
