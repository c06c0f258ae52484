package journal

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/huntlog/huntlog/internal/datastore/repository"
	"github.com/huntlog/huntlog/internal/errors"
)

// Sentinel errors returned by Service operations. Use errors.Is to test.
var (
	// ErrNotFound indicates the record does not exist or belongs to another account.
	ErrNotFound = errors.NewStd("not found")

	// ErrReferentialIntegrity indicates a delete was rejected because other records still reference the target.
	ErrReferentialIntegrity = errors.NewStd("record is still referenced")

	// ErrForbidden indicates the actor lacks the role required for the operation.
	ErrForbidden = errors.NewStd("forbidden")

	// ErrInvalidCredentials indicates an unknown username, wrong password or inactive account.
	ErrInvalidCredentials = errors.NewStd("invalid credentials")
)

// ValidationError reports rejected input. Nothing is persisted when it is
// returned. Fields maps input field names to messages and Input echoes the
// submitted values so a form can be redisplayed.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
	Input  any               `json:"input,omitempty"`
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// ErrorCategory marks ValidationError as a validation failure.
func (e *ValidationError) ErrorCategory() errors.ErrorCategory {
	return errors.CategoryValidation
}

// add records msg for field, keeping the first message per field.
func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// orNil returns e when it holds at least one field error.
func (e *ValidationError) orNil(input any) *ValidationError {
	if len(e.Fields) == 0 {
		return nil
	}
	e.Input = input
	return e
}

func fieldError(field, msg string, input any) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}, Input: input}
}

// referenceAs turns a reference to a record the owner does not have into a
// field error carrying input.
func referenceAs(err error, input any) error {
	var refErr *repository.ReferenceError
	if errors.As(err, &refErr) {
		return fieldError(refErr.Field+"_id", "unknown "+refErr.Field, input)
	}
	return err
}

var repoNotFound = []error{
	repository.ErrAccountNotFound,
	repository.ErrAreaNotFound,
	repository.ErrStandNotFound,
	repository.ErrFirearmNotFound,
	repository.ErrEntryNotFound,
}

// translate maps repository and domain failures to categorized errors.
func translate(op string, err error) error {
	var enhanced *errors.EnhancedError
	if errors.As(err, &enhanced) {
		return err
	}

	var (
		verr     *ValidationError
		refErr   *repository.ReferenceError
		inUse    *repository.InUseError
		category errors.ErrorCategory
		priority string
	)
	switch {
	case errors.As(err, &verr):
		category = errors.CategoryValidation
	case errors.As(err, &refErr):
		err = fieldError(refErr.Field+"_id", "unknown "+refErr.Field, nil)
		category = errors.CategoryValidation
	case errors.As(err, &inUse):
		err = fmt.Errorf("%w: area is used by %d stands and %d entries", ErrReferentialIntegrity, inUse.Stands, inUse.Entries)
		category = errors.CategoryConflict
	case errors.Is(err, ErrReferentialIntegrity), errors.Is(err, repository.ErrDuplicateKey):
		category = errors.CategoryConflict
	case errors.Is(err, ErrNotFound):
		category = errors.CategoryNotFound
	case slices.ContainsFunc(repoNotFound, func(target error) bool { return errors.Is(err, target) }):
		err = fmt.Errorf("%w: %w", ErrNotFound, err)
		category = errors.CategoryNotFound
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrInvalidCredentials):
		category = errors.CategoryAuthorization
	default:
		category = errors.CategoryDatabase
		priority = errors.PriorityHigh
	}

	b := errors.New(err).
		Component("journal").
		Category(category).
		Context("operation", op)
	if priority != "" {
		b = b.Priority(priority)
	}
	return b.Build()
}
