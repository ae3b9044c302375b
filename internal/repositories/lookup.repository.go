package repositories

import (
	"context"

	"clubmanager/internal/database"
	. "clubmanager/internal/models"
)

type RoleRepository interface {
	GetAll(ctx context.Context) ([]Role, error)
	GetByID(ctx context.Context, id int) (*Role, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id int) error
}

type HobbyRepository interface {
	GetAll(ctx context.Context) ([]Hobby, error)
	GetByID(ctx context.Context, id int) (*Hobby, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, hobby *Hobby) error
	Delete(ctx context.Context, id int) error
}

// lookupRepository serves the small name-only reference tables.
type lookupRepository[T any] struct {
	entityStore[T]
}

func NewRole(db database.DB) RoleRepository {
	return &lookupRepository[Role]{
		entityStore: newEntityStore[Role](db, EntityRole, "roleRepository"),
	}
}

func NewHobby(db database.DB) HobbyRepository {
	return &lookupRepository[Hobby]{
		entityStore: newEntityStore[Hobby](db, EntityHobby, "hobbyRepository"),
	}
}

func (r *lookupRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	log := r.log.Function("GetAll")

	var items []T
	if err := r.getDB(ctx).Order("name").Find(&items).Error; err != nil {
		return nil, log.Err("failed to list "+r.entity, err)
	}

	return items, nil
}
