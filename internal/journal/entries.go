package journal

import (
	"context"
	"time"

	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/logger"
	"github.com/huntlog/huntlog/internal/query"
)

// EntryList is a filtered entry list with its filter facets.
type EntryList = query.Result

// ListEntries returns the owner's entries filtered and sorted by p, with the
// owner's areas and entry years as facets.
func (s *Service) ListEntries(ctx context.Context, owner *entities.Account, p query.Params) (list *EntryList, err error) {
	defer s.track(opListEntries, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}

	entries, err := s.repos.Entries.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	areas, err := s.repos.Areas.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	result := query.Apply(entries, areas, p)
	return &result, nil
}

// GetEntry loads one entry with its area, stand and firearm.
func (s *Service) GetEntry(ctx context.Context, owner *entities.Account, id uint) (entry *entities.Entry, err error) {
	defer s.track(opGetEntry, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}
	return s.repos.Entries.GetByID(ctx, owner.ID, id)
}

// CreateEntry validates in on top of the entry defaults and stores it.
func (s *Service) CreateEntry(ctx context.Context, owner *entities.Account, in EntryInput) (entry *entities.Entry, err error) {
	defer s.track(opCreateEntry, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}

	entry = newEntry(owner.ID)
	if verr := MergeEntry(entry, in); verr != nil {
		return nil, verr
	}
	if err = s.repos.Entries.Create(ctx, entry); err != nil {
		return nil, referenceAs(err, in)
	}
	s.invalidate(owner.ID)

	s.log.Info("entry created",
		logger.Uint("owner", owner.ID),
		logger.Uint("entry_id", entry.ID),
		logger.String("species", string(entry.Species)))
	return s.repos.Entries.GetByID(ctx, owner.ID, entry.ID)
}

// UpdateEntry merges in into the stored entry in one transaction.
func (s *Service) UpdateEntry(ctx context.Context, owner *entities.Account, id uint, in EntryInput) (entry *entities.Entry, err error) {
	defer s.track(opUpdateEntry, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}

	_, err = s.repos.Entries.Update(ctx, owner.ID, id, func(e *entities.Entry) error {
		if verr := MergeEntry(e, in); verr != nil {
			return verr
		}
		return nil
	})
	if err != nil {
		return nil, referenceAs(err, in)
	}
	s.invalidate(owner.ID)

	s.log.Info("entry updated", logger.Uint("owner", owner.ID), logger.Uint("entry_id", id))
	return s.repos.Entries.GetByID(ctx, owner.ID, id)
}

// DeleteEntry removes an entry. Nothing references entries, so this only
// fails for unknown ids.
func (s *Service) DeleteEntry(ctx context.Context, owner *entities.Account, id uint) (err error) {
	defer s.track(opDeleteEntry, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return err
	}
	if err = s.repos.Entries.Delete(ctx, owner.ID, id); err != nil {
		return err
	}
	s.invalidate(owner.ID)
	s.log.Info("entry deleted", logger.Uint("owner", owner.ID), logger.Uint("entry_id", id))
	return nil
}
