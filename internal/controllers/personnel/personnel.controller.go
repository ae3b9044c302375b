package personnelController

import (
	"context"

	"clubmanager/internal/apperrors"
	"clubmanager/internal/controllers"
	"clubmanager/internal/logger"
	. "clubmanager/internal/models"
	"clubmanager/internal/repositories"
	"clubmanager/internal/rules"
)

type PersonnelController struct {
	personnelRepo repositories.PersonnelRepository
	services      controllers.Services
	log           logger.Logger
}

func New(personnelRepo repositories.PersonnelRepository, services controllers.Services) *PersonnelController {
	return &PersonnelController{
		personnelRepo: personnelRepo,
		services:      services,
		log:           logger.New("PersonnelController"),
	}
}

func (pc *PersonnelController) GetAll(ctx context.Context) ([]PersonnelView, error) {
	return pc.personnelRepo.GetAll(ctx)
}

func (pc *PersonnelController) Get(ctx context.Context, id int) (*Personnel, error) {
	return pc.personnelRepo.GetByID(ctx, id)
}

func (pc *PersonnelController) Create(ctx context.Context, req PersonnelRequest) (Personnel, error) {
	log := pc.log.Function("Create")

	if err := pc.services.Validator.Struct(req); err != nil {
		return Personnel{}, log.Err("invalid personnel", err)
	}

	var personnel Personnel
	req.Apply(&personnel)

	err := pc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		if err := controllers.CheckIdentity(txCtx, pc.personnelRepo, rules.KindPersonnel, personnel.Identity, nil); err != nil {
			return err
		}

		if err := pc.personnelRepo.Create(txCtx, &personnel); err != nil {
			return err
		}

		if personnel.LocationID == nil {
			return nil
		}
		return pc.personnelRepo.MoveLocation(txCtx, personnel.ID, personnel.LocationID, pc.services.Today())
	})
	if err != nil {
		return Personnel{}, log.Err("failed to create personnel", err)
	}

	pc.services.Committed(ctx, EntityPersonnel, ActionCreated, personnel.ID)
	return personnel, nil
}

func (pc *PersonnelController) Update(ctx context.Context, id int, req PersonnelRequest) (Personnel, error) {
	log := pc.log.Function("Update")

	if err := pc.services.Validator.Struct(req); err != nil {
		return Personnel{}, log.Err("invalid personnel", err, "id", id)
	}

	var personnel Personnel
	err := pc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		existing, err := pc.personnelRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		personnel = *existing
		req.Apply(&personnel)

		if err := controllers.CheckIdentity(txCtx, pc.personnelRepo, rules.KindPersonnel, personnel.Identity, &id); err != nil {
			return err
		}

		if err := pc.personnelRepo.Update(txCtx, id, &personnel); err != nil {
			return err
		}

		if controllers.SameLocation(existing.LocationID, personnel.LocationID) {
			return nil
		}
		return pc.personnelRepo.MoveLocation(txCtx, id, personnel.LocationID, pc.services.Today())
	})
	if err != nil {
		return Personnel{}, log.Err("failed to update personnel", err, "id", id)
	}

	pc.services.Committed(ctx, EntityPersonnel, ActionUpdated, id)
	return personnel, nil
}

func (pc *PersonnelController) Delete(ctx context.Context, id int) error {
	if err := pc.personnelRepo.Delete(ctx, id); err != nil {
		return pc.log.Function("Delete").Err("failed to delete personnel", err, "id", id)
	}

	pc.services.Committed(ctx, EntityPersonnel, ActionDeleted, id)
	return nil
}

func (pc *PersonnelController) LocationHistory(ctx context.Context, id int) ([]LocationHistory, error) {
	log := pc.log.Function("LocationHistory")

	exists, err := pc.personnelRepo.Exists(ctx, id)
	if err != nil {
		return nil, log.Err("failed to check personnel", err, "id", id)
	}
	if !exists {
		return nil, log.Err("failed to get location history", apperrors.NotFound(EntityPersonnel, id), "id", id)
	}

	return pc.personnelRepo.LocationHistory(ctx, id)
}
