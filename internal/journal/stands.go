package journal

import (
	"context"
	"time"

	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/logger"
)

// ListStands returns the owner's stands, restricted to areaID when non-zero.
func (s *Service) ListStands(ctx context.Context, owner *entities.Account, areaID uint) (stands []entities.Stand, err error) {
	defer s.track(opListStands, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}
	return s.repos.Stands.ListByOwner(ctx, owner.ID, areaID)
}

// GetStand loads one stand with its area.
func (s *Service) GetStand(ctx context.Context, owner *entities.Account, id uint) (stand *entities.Stand, err error) {
	defer s.track(opGetStand, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}
	return s.repos.Stands.GetByID(ctx, owner.ID, id)
}

// CreateStand stores a new stand in one of the owner's areas.
func (s *Service) CreateStand(ctx context.Context, owner *entities.Account, in StandInput) (stand *entities.Stand, err error) {
	defer s.track(opCreateStand, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}

	stand = newStand(owner.ID)
	if verr := MergeStand(stand, in, s.Today()); verr != nil {
		return nil, verr
	}
	if err = s.repos.Stands.Create(ctx, stand); err != nil {
		return nil, referenceAs(err, in)
	}

	s.log.Info("stand created",
		logger.Uint("owner", owner.ID),
		logger.Uint("stand_id", stand.ID),
		logger.Uint("area_id", stand.AreaID))
	return s.repos.Stands.GetByID(ctx, owner.ID, stand.ID)
}

// UpdateStand merges in into the stored stand.
func (s *Service) UpdateStand(ctx context.Context, owner *entities.Account, id uint, in StandInput) (stand *entities.Stand, err error) {
	defer s.track(opUpdateStand, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}

	today := s.Today()
	_, err = s.repos.Stands.Update(ctx, owner.ID, id, func(st *entities.Stand) error {
		if verr := MergeStand(st, in, today); verr != nil {
			return verr
		}
		return nil
	})
	if err != nil {
		return nil, referenceAs(err, in)
	}

	s.log.Info("stand updated", logger.Uint("owner", owner.ID), logger.Uint("stand_id", id))
	return s.repos.Stands.GetByID(ctx, owner.ID, id)
}

// DeleteStand removes a stand and clears it from entries that reference it.
func (s *Service) DeleteStand(ctx context.Context, owner *entities.Account, id uint) (err error) {
	defer s.track(opDeleteStand, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return err
	}
	if err = s.repos.Stands.Delete(ctx, owner.ID, id); err != nil {
		return err
	}
	s.invalidate(owner.ID)
	s.log.Info("stand deleted", logger.Uint("owner", owner.ID), logger.Uint("stand_id", id))
	return nil
}
