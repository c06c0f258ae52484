package journal

import (
	"context"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/datastore/repository"
	"github.com/huntlog/huntlog/internal/errors"
	"github.com/huntlog/huntlog/internal/logger"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 150
	minPasswordLen = 8
	// bcrypt ignores input past 72 bytes
	maxPasswordLen = 72

	duplicateUsername = "username is already taken"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// SystemActor performs account maintenance from the command line.
var SystemActor = &entities.Account{Username: "system", IsAdmin: true, Active: true}

// AccountInput is a partial Account. Password is stored as a bcrypt hash.
type AccountInput struct {
	Username Optional[string] `json:"username,omitzero"`
	Password Optional[string] `json:"password,omitzero"`
	IsAdmin  Optional[bool]   `json:"is_admin,omitzero"`
	Active   Optional[bool]   `json:"active,omitzero"`
}

// redacted returns a copy safe to echo back in a ValidationError.
func (in AccountInput) redacted() AccountInput {
	in.Password = Optional[string]{}
	return in
}

// MergeAccount applies the non-password fields of in to a and validates
// the result together with the password, if one is supplied.
func MergeAccount(a *entities.Account, in AccountInput) *ValidationError {
	v := &ValidationError{}

	if in.Username.Set {
		a.Username = strings.TrimSpace(in.Username.Value)
	}
	if in.IsAdmin.Set {
		a.IsAdmin = in.IsAdmin.Present() && in.IsAdmin.Value
	}
	if in.Active.Set {
		a.Active = in.Active.Present() && in.Active.Value
	}

	switch n := utf8.RuneCountInString(a.Username); {
	case n == 0:
		v.add("username", "required")
	case n < minUsernameLen || n > maxUsernameLen:
		v.add("username", "must be 3 to 150 characters")
	case !usernamePattern.MatchString(a.Username):
		v.add("username", "may contain only letters, digits and @.+-_")
	}
	if in.Password.Set {
		switch p := in.Password.Value; {
		case !in.Password.Present() || p == "":
			v.add("password", "required")
		case len(p) < minPasswordLen:
			v.add("password", "must be at least 8 characters")
		case len(p) > maxPasswordLen:
			v.add("password", "must be at most 72 bytes")
		}
	}

	return v.orNil(in.redacted())
}

// Authenticate checks username and password and records the login time.
// Unknown users, wrong passwords and inactive accounts all yield
// ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (account *entities.Account, err error) {
	defer s.track(opAuthenticate, time.Now(), &err)

	account, err = s.repos.Accounts.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrAccountNotFound) {
		// keep the response time independent of whether the user exists
		_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil || !account.Active {
		return nil, ErrInvalidCredentials
	}

	now := s.now().UTC()
	if err = s.repos.Accounts.TouchLogin(ctx, account.ID, now); err != nil {
		return nil, err
	}
	account.LastLoginAt = &now
	return account, nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

func (s *Service) dummyHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("huntlog-timing"), s.settings.Security.BcryptCost)
	})
	return dummyHash
}

// Register creates an active hunter account when self-registration is enabled.
func (s *Service) Register(ctx context.Context, in AccountInput) (account *entities.Account, err error) {
	defer s.track(opRegister, time.Now(), &err)
	if !s.settings.Security.AllowRegistration {
		return nil, ErrForbidden
	}
	in.IsAdmin, in.Active = Some(false), Some(true)
	return s.createAccount(ctx, in)
}

// ListAccounts returns all accounts ordered by username. Admin only.
func (s *Service) ListAccounts(ctx context.Context, actor *entities.Account) (accounts []entities.Account, err error) {
	defer s.track(opListAccounts, time.Now(), &err)
	if err = requireAdmin(actor); err != nil {
		return nil, err
	}
	accounts, err = s.repos.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	c := collate.New(language.German, collate.IgnoreCase)
	slices.SortStableFunc(accounts, func(a, b entities.Account) int {
		return c.CompareString(a.Username, b.Username)
	})
	return accounts, nil
}

// CreateAccount creates an account with the given role. Admin only.
func (s *Service) CreateAccount(ctx context.Context, actor *entities.Account, in AccountInput) (account *entities.Account, err error) {
	defer s.track(opCreateAccount, time.Now(), &err)
	if err = requireAdmin(actor); err != nil {
		return nil, err
	}
	if !in.Active.Set {
		in.Active = Some(true)
	}
	account, err = s.createAccount(ctx, in)
	if err == nil {
		s.log.Info("account created",
			logger.String("actor", actor.Username),
			logger.Uint("account_id", account.ID),
			logger.Bool("is_admin", account.IsAdmin))
	}
	return account, err
}

// UpdateAccount changes username, role, activity or password. Admin only.
// Admins cannot demote or deactivate themselves.
func (s *Service) UpdateAccount(ctx context.Context, actor *entities.Account, id uint, in AccountInput) (account *entities.Account, err error) {
	defer s.track(opUpdateAccount, time.Now(), &err)
	if err = requireAdmin(actor); err != nil {
		return nil, err
	}
	if id == actor.ID && ((in.IsAdmin.Set && !in.IsAdmin.Value) || (in.Active.Set && !in.Active.Value)) {
		return nil, ErrForbidden
	}

	account, err = s.repos.Accounts.Update(ctx, id, func(a *entities.Account) error {
		return s.applyAccount(a, in)
	})
	if err != nil {
		return nil, duplicateAs(err, "username", duplicateUsername, in.redacted())
	}

	s.log.Info("account updated",
		logger.String("actor", actor.Username),
		logger.Uint("account_id", id),
		logger.Bool("password_changed", in.Password.Set))
	return account, nil
}

// DeleteAccount removes an account and all hunting data it owns. Admin only.
// Admins cannot delete themselves.
func (s *Service) DeleteAccount(ctx context.Context, actor *entities.Account, id uint) (err error) {
	defer s.track(opDeleteAccount, time.Now(), &err)
	if err = requireAdmin(actor); err != nil {
		return err
	}
	if id == actor.ID {
		return ErrForbidden
	}
	if err = s.repos.Accounts.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(id)
	s.log.Info("account deleted", logger.String("actor", actor.Username), logger.Uint("account_id", id))
	return nil
}

// EnsureAdmin creates the administrator username with password, or
// promotes and reactivates an existing account of that name without
// touching its password. created reports whether a new account was made.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) (account *entities.Account, created bool, err error) {
	defer s.track(opEnsureAdmin, time.Now(), &err)

	existing, err := s.repos.Accounts.GetByUsername(ctx, strings.TrimSpace(username))
	switch {
	case err == nil:
		if existing.IsAdmin && existing.Active {
			return existing, false, nil
		}
		account, err = s.repos.Accounts.Update(ctx, existing.ID, func(a *entities.Account) error {
			a.IsAdmin, a.Active = true, true
			return nil
		})
		if err != nil {
			return nil, false, err
		}
		s.log.Info("account promoted to admin", logger.Uint("account_id", account.ID))
		return account, false, nil
	case !errors.Is(err, repository.ErrAccountNotFound):
		return nil, false, err
	}

	account, err = s.createAccount(ctx, AccountInput{
		Username: Some(username),
		Password: Some(password),
		IsAdmin:  Some(true),
		Active:   Some(true),
	})
	if err != nil {
		return nil, false, err
	}
	s.log.Info("admin account created", logger.Uint("account_id", account.ID))
	return account, true, nil
}

// SetPassword replaces the password of username.
func (s *Service) SetPassword(ctx context.Context, username, password string) (err error) {
	defer s.track(opSetPassword, time.Now(), &err)

	account, err := s.repos.Accounts.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return err
	}
	_, err = s.repos.Accounts.Update(ctx, account.ID, func(a *entities.Account) error {
		return s.applyAccount(a, AccountInput{Password: Some(password)})
	})
	return err
}

func (s *Service) createAccount(ctx context.Context, in AccountInput) (*entities.Account, error) {
	if !in.Password.Set {
		return nil, fieldError("password", "required", in.redacted())
	}
	account := &entities.Account{}
	if err := s.applyAccount(account, in); err != nil {
		return nil, err
	}
	if err := s.repos.Accounts.Create(ctx, account); err != nil {
		return nil, duplicateAs(err, "username", duplicateUsername, in.redacted())
	}
	return account, nil
}

// applyAccount merges in and hashes a supplied password.
func (s *Service) applyAccount(a *entities.Account, in AccountInput) error {
	if verr := MergeAccount(a, in); verr != nil {
		return verr
	}
	if !in.Password.Set {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password.Value), s.settings.Security.BcryptCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}
