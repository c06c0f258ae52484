package journal

import (
	"context"
	"time"

	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/logger"
)

// ListFirearms returns the owner's firearms.
func (s *Service) ListFirearms(ctx context.Context, owner *entities.Account) (firearms []entities.Firearm, err error) {
	defer s.track(opListFirearms, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}
	return s.repos.Firearms.ListByOwner(ctx, owner.ID)
}

// GetFirearm loads one firearm.
func (s *Service) GetFirearm(ctx context.Context, owner *entities.Account, id uint) (firearm *entities.Firearm, err error) {
	defer s.track(opGetFirearm, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}
	return s.repos.Firearms.GetByID(ctx, owner.ID, id)
}

// CreateFirearm stores a new firearm.
func (s *Service) CreateFirearm(ctx context.Context, owner *entities.Account, in FirearmInput) (firearm *entities.Firearm, err error) {
	defer s.track(opCreateFirearm, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}

	firearm = newFirearm(owner.ID)
	if verr := MergeFirearm(firearm, in); verr != nil {
		return nil, verr
	}
	if err = s.repos.Firearms.Create(ctx, firearm); err != nil {
		return nil, err
	}

	s.log.Info("firearm created", logger.Uint("owner", owner.ID), logger.Uint("firearm_id", firearm.ID))
	return firearm, nil
}

// UpdateFirearm merges in into the stored firearm.
func (s *Service) UpdateFirearm(ctx context.Context, owner *entities.Account, id uint, in FirearmInput) (firearm *entities.Firearm, err error) {
	defer s.track(opUpdateFirearm, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}

	firearm, err = s.repos.Firearms.Update(ctx, owner.ID, id, func(f *entities.Firearm) error {
		if verr := MergeFirearm(f, in); verr != nil {
			return verr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("firearm updated", logger.Uint("owner", owner.ID), logger.Uint("firearm_id", id))
	return firearm, nil
}

// DeleteFirearm removes a firearm. Entries that used it keep their data
// with the firearm reference cleared.
func (s *Service) DeleteFirearm(ctx context.Context, owner *entities.Account, id uint) (err error) {
	defer s.track(opDeleteFirearm, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return err
	}
	if err = s.repos.Firearms.Delete(ctx, owner.ID, id); err != nil {
		return err
	}
	s.invalidate(owner.ID)
	s.log.Info("firearm deleted", logger.Uint("owner", owner.ID), logger.Uint("firearm_id", id))
	return nil
}
