package journal

import (
	"context"
	"strings"
	"time"

	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/datastore/repository"
	"github.com/huntlog/huntlog/internal/errors"
	"github.com/huntlog/huntlog/internal/logger"
	"github.com/huntlog/huntlog/internal/query"
)

const duplicateAreaName = "an area with this name already exists"

// ListAreas returns the owner's areas in German collation order.
func (s *Service) ListAreas(ctx context.Context, owner *entities.Account) (areas []entities.Area, err error) {
	defer s.track(opListAreas, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}
	areas, err = s.repos.Areas.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	return query.SortAreas(areas), nil
}

// GetArea loads one area.
func (s *Service) GetArea(ctx context.Context, owner *entities.Account, id uint) (area *entities.Area, err error) {
	defer s.track(opGetArea, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}
	return s.repos.Areas.GetByID(ctx, owner.ID, id)
}

// AreaUsage returns the number of entries recorded in an area.
func (s *Service) AreaUsage(ctx context.Context, owner *entities.Account, id uint) (n int64, err error) {
	defer s.track(opAreaUsage, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return 0, err
	}
	if _, err = s.repos.Areas.GetByID(ctx, owner.ID, id); err != nil {
		return 0, err
	}
	return s.repos.Entries.CountByArea(ctx, owner.ID, id)
}

// CreateArea stores a new area. Names are unique per owner.
func (s *Service) CreateArea(ctx context.Context, owner *entities.Account, in AreaInput) (area *entities.Area, err error) {
	defer s.track(opCreateArea, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}

	area = &entities.Area{AccountID: owner.ID}
	if verr := MergeArea(area, in); verr != nil {
		return nil, verr
	}
	if err = s.checkAreaName(ctx, owner.ID, area.Name, 0, in); err != nil {
		return nil, err
	}
	if err = s.repos.Areas.Create(ctx, area); err != nil {
		return nil, duplicateAs(err, "name", duplicateAreaName, in)
	}
	s.invalidate(owner.ID)

	s.log.Info("area created", logger.Uint("owner", owner.ID), logger.Uint("area_id", area.ID))
	return area, nil
}

// UpdateArea merges in into the stored area.
func (s *Service) UpdateArea(ctx context.Context, owner *entities.Account, id uint, in AreaInput) (area *entities.Area, err error) {
	defer s.track(opUpdateArea, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return nil, err
	}

	if in.Name.Present() {
		if err = s.checkAreaName(ctx, owner.ID, strings.TrimSpace(in.Name.Value), id, in); err != nil {
			return nil, err
		}
	}
	area, err = s.repos.Areas.Update(ctx, owner.ID, id, func(a *entities.Area) error {
		if verr := MergeArea(a, in); verr != nil {
			return verr
		}
		return nil
	})
	if err != nil {
		return nil, duplicateAs(err, "name", duplicateAreaName, in)
	}
	s.invalidate(owner.ID)

	s.log.Info("area updated", logger.Uint("owner", owner.ID), logger.Uint("area_id", id))
	return area, nil
}

// DeleteArea removes an area. It fails with ErrReferentialIntegrity while
// stands or entries reference it; nothing is changed in that case.
func (s *Service) DeleteArea(ctx context.Context, owner *entities.Account, id uint) (err error) {
	defer s.track(opDeleteArea, time.Now(), &err)
	if err = requireOwner(owner); err != nil {
		return err
	}
	if err = s.repos.Areas.Delete(ctx, owner.ID, id); err != nil {
		return err
	}
	s.invalidate(owner.ID)
	s.log.Info("area deleted", logger.Uint("owner", owner.ID), logger.Uint("area_id", id))
	return nil
}

func (s *Service) checkAreaName(ctx context.Context, owner uint, name string, excludeID uint, in AreaInput) error {
	if name == "" {
		return nil
	}
	exists, err := s.repos.Areas.ExistsName(ctx, owner, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fieldError("name", duplicateAreaName, in)
	}
	return nil
}

// duplicateAs turns a unique constraint violation into a field error.
func duplicateAs(err error, field, msg string, input any) error {
	if errors.Is(err, repository.ErrDuplicateKey) {
		return fieldError(field, msg, input)
	}
	return err
}
