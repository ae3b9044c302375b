package repositories

import (
	"context"

	"clubmanager/internal/database"
	. "clubmanager/internal/models"
)

type PersonnelRepository interface {
	GetAll(ctx context.Context) ([]PersonnelView, error)
	GetByID(ctx context.Context, id int) (*Personnel, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, personnel *Personnel) error
	Update(ctx context.Context, id int, personnel *Personnel) error
	Delete(ctx context.Context, id int) error
	SSNTaken(ctx context.Context, ssn string, excludeID *int) (bool, error)
	MedicareCardTaken(ctx context.Context, card string, excludeID *int) (bool, error)
	MoveLocation(ctx context.Context, id int, locationID *int, on Date) error
	LocationHistory(ctx context.Context, id int) ([]LocationHistory, error)
}

type personnelRepository struct {
	entityStore[Personnel]
}

func NewPersonnel(db database.DB) PersonnelRepository {
	return &personnelRepository{
		entityStore: newEntityStore[Personnel](db, EntityPersonnel, "personnelRepository"),
	}
}

func (r *personnelRepository) GetAll(ctx context.Context) ([]PersonnelView, error) {
	log := r.log.Function("GetAll")

	var personnel []PersonnelView
	err := r.getDB(ctx).
		Table("personnel").
		Select("personnel.*, roles.name AS role_name, locations.name AS location_name").
		Joins("LEFT JOIN roles ON roles.id = personnel.role_id").
		Joins("LEFT JOIN locations ON locations.id = personnel.location_id").
		Order("personnel.last_name, personnel.first_name").
		Scan(&personnel).Error
	if err != nil {
		return nil, log.Err("failed to get personnel", err)
	}

	return personnel, nil
}

func (r *personnelRepository) SSNTaken(ctx context.Context, ssn string, excludeID *int) (bool, error) {
	return r.taken(ctx, "ssn", ssn, excludeID)
}

func (r *personnelRepository) MedicareCardTaken(ctx context.Context, card string, excludeID *int) (bool, error) {
	return r.taken(ctx, "medicare_card", card, excludeID)
}

func (r *personnelRepository) MoveLocation(ctx context.Context, id int, locationID *int, on Date) error {
	if err := personnelHistory.moveLocation(r.getDB(ctx), id, locationID, on); err != nil {
		return r.log.Function("MoveLocation").Err("failed to record location change", r.translate(err, id), "id", id)
	}
	return nil
}

func (r *personnelRepository) LocationHistory(ctx context.Context, id int) ([]LocationHistory, error) {
	history, err := personnelHistory.list(r.getDB(ctx), id)
	if err != nil {
		return nil, r.log.Function("LocationHistory").Err("failed to get location history", err, "id", id)
	}
	return history, nil
}
