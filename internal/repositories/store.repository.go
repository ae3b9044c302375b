package repositories

import (
	"context"
	"errors"
	"fmt"

	"clubmanager/config"
	"clubmanager/internal/apperrors"
	"clubmanager/internal/database"
	"clubmanager/internal/logger"
	"clubmanager/internal/services"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// entityStore is the shared CRUD core of the entity repositories: reads by
// id go through the entity cache, writes drop the cached copy.
type entityStore[T any] struct {
	db     database.DB
	log    logger.Logger
	entity string
}

func newEntityStore[T any](db database.DB, entity, name string) entityStore[T] {
	return entityStore[T]{
		db:     db,
		log:    logger.New(name),
		entity: entity,
	}
}

func (s entityStore[T]) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return s.db.SQLWithContext(ctx)
}

func (s entityStore[T]) cache(ctx context.Context, id int) *database.CacheBuilder {
	return database.NewCacheBuilder(s.db.Cache.Entities, id).
		WithHashPattern(services.CacheKey(s.entity)).
		WithTTL(s.db.CacheTTL).
		WithContext(ctx)
}

func (s entityStore[T]) GetByID(ctx context.Context, id int) (*T, error) {
	log := s.log.Function("GetByID")

	_, inTx := services.GetTransaction(ctx)

	var entity T
	if !inTx {
		found, err := s.cache(ctx, id).Get(&entity)
		if err != nil {
			log.Warn("failed to read cache", "id", id, "error", err)
		}
		if found {
			return &entity, nil
		}
	}

	if err := s.getDB(ctx).First(&entity, id).Error; err != nil {
		return nil, log.Err("failed to get "+s.entity, s.translate(err, id), "id", id)
	}

	if !inTx {
		if err := s.cache(ctx, id).WithStruct(&entity).Set(); err != nil {
			log.Warn("failed to add to cache", "id", id, "error", err)
		}
	}

	return &entity, nil
}

// GetForUpdate reads the row bypassing the cache and, on postgres, holds a
// row lock until the surrounding transaction ends. sqlite transactions are
// opened with an immediate lock and need nothing more.
func (s entityStore[T]) GetForUpdate(ctx context.Context, id int) (*T, error) {
	query := s.getDB(ctx)
	if s.db.Driver == config.DriverPostgres {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var entity T
	if err := query.First(&entity, id).Error; err != nil {
		return nil, s.log.Function("GetForUpdate").Err("failed to lock "+s.entity, s.translate(err, id), "id", id)
	}
	return &entity, nil
}

func (s entityStore[T]) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := s.getDB(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, s.log.Function("Exists").Err("failed to check "+s.entity, err, "id", id)
	}
	return count > 0, nil
}

func (s entityStore[T]) Create(ctx context.Context, entity *T) error {
	log := s.log.Function("Create")

	if err := s.getDB(ctx).Create(entity).Error; err != nil {
		return log.Err("failed to create "+s.entity, s.translate(err, nil))
	}

	return nil
}

func (s entityStore[T]) Update(ctx context.Context, id int, entity *T) error {
	log := s.log.Function("Update")

	if err := s.getDB(ctx).Save(entity).Error; err != nil {
		return log.Err("failed to update "+s.entity, s.translate(err, id), "id", id)
	}

	s.forget(ctx, id)
	return nil
}

func (s entityStore[T]) Delete(ctx context.Context, id int) error {
	log := s.log.Function("Delete")

	result := s.getDB(ctx).Delete(new(T), id)
	if result.Error != nil {
		return log.Err("failed to delete "+s.entity, s.translateDelete(result.Error, id), "id", id)
	}
	if result.RowsAffected == 0 {
		return log.Err("failed to delete "+s.entity, apperrors.NotFound(s.entity, id), "id", id)
	}

	s.forget(ctx, id)
	return nil
}

func (s entityStore[T]) forget(ctx context.Context, id int) {
	if err := s.cache(ctx, id).Delete(); err != nil {
		s.log.Function("forget").Warn("failed to remove from cache", "id", id, "error", err)
	}
}

// taken reports whether another row already uses value in column.
func (s entityStore[T]) taken(ctx context.Context, column, value string, excludeID *int) (bool, error) {
	query := s.getDB(ctx).Model(new(T)).Where(column+" = ?", value)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, s.log.Function("taken").Err("failed to look up "+column, err, "entity", s.entity)
	}
	return count > 0, nil
}

func (s entityStore[T]) translate(err error, id any) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NotFound(s.entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.BusinessRule(
			apperrors.CodeDuplicateIdentity,
			fmt.Sprintf("a %s with the same unique values already exists", s.entity),
		)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &apperrors.Error{
			Kind:    apperrors.KindNotFound,
			Code:    apperrors.CodeNotFound,
			Message: fmt.Sprintf("%s references a record that does not exist", s.entity),
			Err:     err,
		}
	default:
		return apperrors.Unexpected(err)
	}
}

func (s entityStore[T]) translateDelete(err error, id int) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.BusinessRule(
			apperrors.CodeStillReferenced,
			fmt.Sprintf("%s %d is still referenced by other records", s.entity, id),
		)
	}
	return s.translate(err, id)
}

func (s entityStore[T]) translateLink(err error, what string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.BusinessRule(apperrors.CodeDuplicateAssociation, what+" already exists")
	}
	return s.translate(err, nil)
}
