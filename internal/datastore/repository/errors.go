package repository

import "github.com/huntlog/huntlog/internal/errors"

// Sentinel errors for repository operations.
var (
	// ErrAccountNotFound indicates the requested account does not exist.
	ErrAccountNotFound = errors.NewStd("account not found")

	// ErrAreaNotFound indicates the area does not exist or belongs to another account.
	ErrAreaNotFound = errors.NewStd("area not found")

	// ErrStandNotFound indicates the stand does not exist or belongs to another account.
	ErrStandNotFound = errors.NewStd("stand not found")

	// ErrFirearmNotFound indicates the firearm does not exist or belongs to another account.
	ErrFirearmNotFound = errors.NewStd("firearm not found")

	// ErrEntryNotFound indicates the entry does not exist or belongs to another account.
	ErrEntryNotFound = errors.NewStd("entry not found")

	// ErrDuplicateKey indicates a unique constraint violation.
	ErrDuplicateKey = errors.NewStd("duplicate key")

	// ErrAreaInUse indicates stands or entries still reference the area.
	ErrAreaInUse = errors.NewStd("area is still referenced")
)

// ReferenceError reports a foreign key that points to a record the owner
// does not have.
type ReferenceError struct {
	Field string
	ID    uint
}

func (e *ReferenceError) Error() string {
	return "unknown " + e.Field
}

// InUseError details why an area cannot be deleted.
type InUseError struct {
	Stands  int64
	Entries int64
}

func (e *InUseError) Error() string {
	return ErrAreaInUse.Error()
}

// Unwrap lets errors.Is match ErrAreaInUse.
func (e *InUseError) Unwrap() error {
	return ErrAreaInUse
}
