package journal

import (
	"context"
	"time"

	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/logger"
	"github.com/huntlog/huntlog/internal/observability/metrics"
	"github.com/huntlog/huntlog/internal/season"
	"github.com/huntlog/huntlog/internal/stats"
)

// Dashboard is the statistics overview of one account.
type Dashboard struct {
	Date     string           `json:"date"`
	Season   season.Window    `json:"season"`
	Current  stats.Summary    `json:"season_stats"`
	AllTime  stats.Summary    `json:"all_time_stats"`
	Trophies []entities.Entry `json:"trophies"`
	Recent   []entities.Entry `json:"recent"`
}

// Dashboard computes the overview for the season containing today. Season
// histograms are limited by dashboard.topspecies and dashboard.topareas.
// The trophy list covers all entries. Results are cached per owner until
// the next write or the end of the day.
func (s *Service) Dashboard(ctx context.Context, owner *entities.Account, today time.Time) (d *Dashboard, err error) {
	defer s.track(opDashboard, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}

	day := today.Format(season.DateLayout)
	if cached, ok := s.cachedDashboard(owner.ID, day); ok {
		return cached, nil
	}

	window := season.Current(today)
	all, err := s.repos.Entries.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	current, err := s.repos.Entries.ListByDateRange(ctx, owner.ID, window.StartDate(), window.EndDate())
	if err != nil {
		return nil, err
	}
	recent, err := s.repos.Entries.Recent(ctx, owner.ID, s.settings.Dashboard.RecentEntries)
	if err != nil {
		return nil, err
	}

	cfg := s.settings.Dashboard
	d = &Dashboard{
		Date:     day,
		Season:   window,
		Current:  stats.Summarize(current, cfg.TopSpecies, cfg.TopAreas),
		AllTime:  stats.Summarize(all, cfg.TopSpecies, cfg.TopAreas),
		Trophies: stats.TrophyList(all),
		Recent:   recent,
	}

	if s.dashboards != nil {
		s.dashboards.SetDefault(dashboardKey(owner.ID), d)
		s.metrics.RecordOperation(metrics.OpCacheSet, metrics.StatusSuccess)
	}
	return d, nil
}

func (s *Service) cachedDashboard(owner uint, day string) (*Dashboard, bool) {
	if s.dashboards == nil {
		return nil, false
	}
	v, ok := s.dashboards.Get(dashboardKey(owner))
	if d, isDashboard := v.(*Dashboard); ok && isDashboard && d.Date == day {
		s.metrics.RecordOperation(metrics.OpCacheGet, metrics.StatusHit)
		s.log.Debug("dashboard cache hit", logger.Uint("owner", owner))
		return d, true
	}
	s.metrics.RecordOperation(metrics.OpCacheGet, metrics.StatusMiss)
	return nil, false
}
