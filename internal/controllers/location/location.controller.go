package locationController

import (
	"context"

	"clubmanager/internal/controllers"
	"clubmanager/internal/logger"
	. "clubmanager/internal/models"
	"clubmanager/internal/repositories"
)

type LocationController struct {
	locationRepo repositories.LocationRepository
	services     controllers.Services
	log          logger.Logger
}

func New(locationRepo repositories.LocationRepository, services controllers.Services) *LocationController {
	return &LocationController{
		locationRepo: locationRepo,
		services:     services,
		log:          logger.New("LocationController"),
	}
}

func (lc *LocationController) GetAll(ctx context.Context) ([]Location, error) {
	return lc.locationRepo.GetAll(ctx)
}

func (lc *LocationController) Get(ctx context.Context, id int) (*Location, error) {
	return lc.locationRepo.GetByID(ctx, id)
}

func (lc *LocationController) Create(ctx context.Context, req LocationRequest) (Location, error) {
	log := lc.log.Function("Create")

	if err := lc.services.Validator.Struct(req); err != nil {
		return Location{}, log.Err("invalid location", err)
	}

	var location Location
	req.Apply(&location)

	if err := lc.locationRepo.Create(ctx, &location); err != nil {
		return Location{}, log.Err("failed to create location", err)
	}

	lc.services.Committed(ctx, EntityLocation, ActionCreated, location.ID)
	return location, nil
}

func (lc *LocationController) Update(ctx context.Context, id int, req LocationRequest) (Location, error) {
	log := lc.log.Function("Update")

	if err := lc.services.Validator.Struct(req); err != nil {
		return Location{}, log.Err("invalid location", err, "id", id)
	}

	var location Location
	err := lc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		existing, err := lc.locationRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		location = *existing
		req.Apply(&location)

		return lc.locationRepo.Update(txCtx, id, &location)
	})
	if err != nil {
		return Location{}, log.Err("failed to update location", err, "id", id)
	}

	lc.services.Committed(ctx, EntityLocation, ActionUpdated, id)
	return location, nil
}

func (lc *LocationController) Delete(ctx context.Context, id int) error {
	if err := lc.locationRepo.Delete(ctx, id); err != nil {
		return lc.log.Function("Delete").Err("failed to delete location", err, "id", id)
	}

	lc.services.Committed(ctx, EntityLocation, ActionDeleted, id)
	return nil
}
