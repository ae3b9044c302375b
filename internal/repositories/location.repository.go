package repositories

import (
	"context"

	"clubmanager/internal/database"
	. "clubmanager/internal/models"
)

type LocationRepository interface {
	GetAll(ctx context.Context) ([]Location, error)
	GetByID(ctx context.Context, id int) (*Location, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, location *Location) error
	Update(ctx context.Context, id int, location *Location) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}

type locationRepository struct {
	entityStore[Location]
}

func NewLocation(db database.DB) LocationRepository {
	return &locationRepository{
		entityStore: newEntityStore[Location](db, EntityLocation, "locationRepository"),
	}
}

func (r *locationRepository) GetAll(ctx context.Context) ([]Location, error) {
	log := r.log.Function("GetAll")

	var locations []Location
	if err := r.getDB(ctx).Order("type DESC, name").Find(&locations).Error; err != nil {
		return nil, log.Err("failed to get locations", err)
	}

	return locations, nil
}

func (r *locationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.getDB(ctx).Model(&Location{}).Count(&count).Error; err != nil {
		return 0, r.log.Function("Count").Err("failed to count locations", err)
	}
	return count, nil
}
