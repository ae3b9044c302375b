// Package controllers holds what the club use cases share. Each resource
// has its own controller package underneath.
package controllers

import (
	"context"
	"time"

	"clubmanager/internal/database"
	"clubmanager/internal/events"
	. "clubmanager/internal/models"
	"clubmanager/internal/rules"
	"clubmanager/internal/services"
	"clubmanager/internal/utils"
)

// Services bundles the collaborators every controller needs besides its
// repositories.
type Services struct {
	Transactions *services.TransactionService
	Invalidation *services.CacheInvalidationService
	Validator    *utils.Validator
	Now          func() time.Time
}

func NewServices(db database.DB, eventBus *events.EventBus) Services {
	return Services{
		Transactions: services.NewTransactionService(db),
		Invalidation: services.NewCacheInvalidationService(db, eventBus),
		Validator:    NewRequestValidator(),
		Now:          time.Now,
	}
}

// NewRequestValidator knows the model value types and enums used by the
// request structs.
func NewRequestValidator() *utils.Validator {
	return utils.NewValidator(
		utils.WithValuerTypes(Date{}, ClockTime{}),
		utils.WithEnum(
			"relationship",
			string(RelationshipFather),
			string(RelationshipMother),
			string(RelationshipGrandfather),
			string(RelationshipGrandmother),
			string(RelationshipTutor),
			string(RelationshipPartner),
			string(RelationshipFriend),
			string(RelationshipOther),
		),
	)
}

func (s Services) Today() Date {
	return DateOf(s.Now())
}

// Committed runs after a write has been committed.
func (s Services) Committed(ctx context.Context, entity, action string, id int) {
	s.Invalidation.Invalidate(ctx, entity, action, id)
}

// IdentityRepository is implemented by the repositories of entities that
// carry an Identity.
type IdentityRepository interface {
	SSNTaken(ctx context.Context, ssn string, excludeID *int) (bool, error)
	MedicareCardTaken(ctx context.Context, card string, excludeID *int) (bool, error)
}

// CheckIdentity fails when another entity of the same kind already uses
// the SSN or medicare card. excludeID is the entity being updated.
func CheckIdentity(
	ctx context.Context,
	repo IdentityRepository,
	kind string,
	identity Identity,
	excludeID *int,
) error {
	ssnTaken, err := repo.SSNTaken(ctx, identity.SSN, excludeID)
	if err != nil {
		return err
	}

	medicareTaken, err := repo.MedicareCardTaken(ctx, identity.MedicareCard, excludeID)
	if err != nil {
		return err
	}

	return rules.CheckIdentityAvailable(kind, ssnTaken, medicareTaken)
}

func SameLocation(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
