// Package lookupController manages the reference lists personnel roles
// and member hobbies are picked from.
package lookupController

import (
	"context"

	"clubmanager/internal/controllers"
	"clubmanager/internal/logger"
	. "clubmanager/internal/models"
	"clubmanager/internal/repositories"
)

type LookupController struct {
	roleRepo  repositories.RoleRepository
	hobbyRepo repositories.HobbyRepository
	services  controllers.Services
	log       logger.Logger
}

func New(
	roleRepo repositories.RoleRepository,
	hobbyRepo repositories.HobbyRepository,
	services controllers.Services,
) *LookupController {
	return &LookupController{
		roleRepo:  roleRepo,
		hobbyRepo: hobbyRepo,
		services:  services,
		log:       logger.New("LookupController"),
	}
}

func (lc *LookupController) Roles(ctx context.Context) ([]Role, error) {
	return lc.roleRepo.GetAll(ctx)
}

func (lc *LookupController) CreateRole(ctx context.Context, req NameRequest) (Role, error) {
	log := lc.log.Function("CreateRole")

	if err := lc.services.Validator.Struct(req); err != nil {
		return Role{}, log.Err("invalid role", err)
	}

	role := Role{Name: req.Name}
	if err := lc.roleRepo.Create(ctx, &role); err != nil {
		return Role{}, log.Err("failed to create role", err, "name", req.Name)
	}

	lc.services.Committed(ctx, EntityRole, ActionCreated, role.ID)
	return role, nil
}

func (lc *LookupController) DeleteRole(ctx context.Context, id int) error {
	if err := lc.roleRepo.Delete(ctx, id); err != nil {
		return lc.log.Function("DeleteRole").Err("failed to delete role", err, "id", id)
	}

	lc.services.Committed(ctx, EntityRole, ActionDeleted, id)
	return nil
}

func (lc *LookupController) Hobbies(ctx context.Context) ([]Hobby, error) {
	return lc.hobbyRepo.GetAll(ctx)
}

func (lc *LookupController) CreateHobby(ctx context.Context, req NameRequest) (Hobby, error) {
	log := lc.log.Function("CreateHobby")

	if err := lc.services.Validator.Struct(req); err != nil {
		return Hobby{}, log.Err("invalid hobby", err)
	}

	hobby := Hobby{Name: req.Name}
	if err := lc.hobbyRepo.Create(ctx, &hobby); err != nil {
		return Hobby{}, log.Err("failed to create hobby", err, "name", req.Name)
	}

	lc.services.Committed(ctx, EntityHobby, ActionCreated, hobby.ID)
	return hobby, nil
}

func (lc *LookupController) DeleteHobby(ctx context.Context, id int) error {
	if err := lc.hobbyRepo.Delete(ctx, id); err != nil {
		return lc.log.Function("DeleteHobby").Err("failed to delete hobby", err, "id", id)
	}

	lc.services.Committed(ctx, EntityHobby, ActionDeleted, id)
	return nil
}
