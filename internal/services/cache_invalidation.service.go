package services

import (
	"context"
	"time"

	"clubmanager/internal/database"
	"clubmanager/internal/events"
	"clubmanager/internal/logger"
	. "clubmanager/internal/models"

	"github.com/google/uuid"
)

// CacheInvalidationService runs after a committed write: it drops the
// cached copy of the entity and tells live clients what changed.
type CacheInvalidationService struct {
	db       database.DB
	eventBus *events.EventBus
	log      logger.Logger
}

func NewCacheInvalidationService(db database.DB, eventBus *events.EventBus) *CacheInvalidationService {
	return &CacheInvalidationService{
		db:       db,
		eventBus: eventBus,
		log:      logger.New("CacheInvalidationService"),
	}
}

// CacheKey is the entity cache key shared with the repositories.
func CacheKey(entity string) string {
	return entity + ":%v"
}

func (s *CacheInvalidationService) Invalidate(ctx context.Context, entity, action string, id int) ActivityEvent {
	log := s.log.Function("Invalidate")

	if err := database.NewCacheBuilder(s.db.Cache.Entities, id).
		WithHashPattern(CacheKey(entity)).
		WithContext(ctx).
		Delete(); err != nil {
		log.Warn("failed to invalidate cache", "entity", entity, "id", id, "error", err)
	}

	activity := ActivityEvent{
		ID:         uuid.New().String(),
		Entity:     entity,
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now(),
	}

	event := events.Event{
		ID:      activity.ID,
		Type:    entity,
		Channel: events.ActivityChannel,
		Action:  action,
		Data: map[string]any{
			"entity":   entity,
			"entityId": id,
		},
		Timestamp: activity.OccurredAt,
	}

	if err := s.eventBus.Publish(events.ActivityChannel, event); err != nil {
		log.Er("failed to publish activity", err, "entity", entity, "id", id)
	}

	return activity
}
