// Package journal is the service layer of huntlog. It enforces account
// ownership, validates and merges partial inputs, composes the season and
// statistics packages into the dashboard and manages accounts.
//
// Every hunting-data operation takes the authenticated owner. Records of
// other accounts are reported as ErrNotFound.
package journal

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/datastore/repository"
	"github.com/huntlog/huntlog/internal/errors"
	"github.com/huntlog/huntlog/internal/logger"
	"github.com/huntlog/huntlog/internal/observability/metrics"
)

// Operation names used for metrics labels and error context.
const (
	opListEntries   = "list_entries"
	opGetEntry      = "get_entry"
	opCreateEntry   = "create_entry"
	opUpdateEntry   = "update_entry"
	opDeleteEntry   = "delete_entry"
	opDashboard     = "dashboard"
	opListAreas     = "list_areas"
	opGetArea       = "get_area"
	opAreaUsage     = "area_usage"
	opCreateArea    = "create_area"
	opUpdateArea    = "update_area"
	opDeleteArea    = "delete_area"
	opListStands    = "list_stands"
	opGetStand      = "get_stand"
	opCreateStand   = "create_stand"
	opUpdateStand   = "update_stand"
	opDeleteStand   = "delete_stand"
	opListFirearms  = "list_firearms"
	opGetFirearm    = "get_firearm"
	opCreateFirearm = "create_firearm"
	opUpdateFirearm = "update_firearm"
	opDeleteFirearm = "delete_firearm"
	opAuthenticate  = "authenticate"
	opRegister      = "register"
	opListAccounts  = "list_accounts"
	opCreateAccount = "create_account"
	opUpdateAccount = "update_account"
	opDeleteAccount = "delete_account"
	opEnsureAdmin   = "ensure_admin"
	opSetPassword   = "set_password"
)

// Service implements the journal operations on top of the repositories.
type Service struct {
	repos      *repository.Repositories
	settings   *conf.Settings
	log        logger.Logger
	metrics    metrics.Recorder
	dashboards *cache.Cache
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics records operation counts, durations and errors.
func WithMetrics(r metrics.Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.metrics = r
		}
	}
}

// WithClock replaces the wall clock, used for build year bounds and login times.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a Service. A positive dashboard.cachettl enables the per-owner
// dashboard cache.
func New(repos *repository.Repositories, settings *conf.Settings, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		repos:    repos,
		settings: settings,
		log:      log,
		metrics:  metrics.NopRecorder{},
		now:      time.Now,
	}
	if ttl := settings.Dashboard.CacheTTL; ttl > 0 {
		s.dashboards = cache.New(ttl, 2*ttl)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current date in the configured timezone.
func (s *Service) Today() time.Time {
	return s.now().In(s.settings.Location())
}

// track records metrics for op and replaces *errp with its categorized form.
// Call it deferred with the start time of the operation.
func (s *Service) track(op string, start time.Time, errp *error) {
	s.metrics.RecordDuration(op, time.Since(start).Seconds())
	if *errp == nil {
		s.metrics.RecordOperation(op, metrics.StatusSuccess)
		return
	}

	*errp = translate(op, *errp)
	category := errors.CategoryOf(*errp)
	s.metrics.RecordOperation(op, metrics.StatusError)
	s.metrics.RecordError(op, string(category))

	switch category {
	case errors.CategoryDatabase, errors.CategoryGeneric:
		s.log.Error("operation failed", logger.String("operation", op), logger.Error(*errp))
	default:
		s.log.Debug("operation rejected",
			logger.String("operation", op),
			logger.String("category", string(category)),
			logger.Error(*errp))
	}
}

// requireOwner rejects calls without an active authenticated account.
func requireOwner(owner *entities.Account) error {
	if owner == nil || owner.ID == 0 || !owner.Active {
		return ErrForbidden
	}
	return nil
}

// requireAdmin rejects account management by non-administrators.
func requireAdmin(actor *entities.Account) error {
	if actor == nil || !actor.IsAdmin || !actor.Active {
		return ErrForbidden
	}
	return nil
}

func dashboardKey(owner uint) string {
	return fmt.Sprintf("dashboard:%d", owner)
}

// invalidate drops cached statistics after a write by owner.
func (s *Service) invalidate(owner uint) {
	if s.dashboards != nil {
		s.dashboards.Delete(dashboardKey(owner))
	}
}
