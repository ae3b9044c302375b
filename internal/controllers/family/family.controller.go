package familyController

import (
	"context"

	"clubmanager/internal/controllers"
	"clubmanager/internal/logger"
	. "clubmanager/internal/models"
	"clubmanager/internal/repositories"
	"clubmanager/internal/rules"
)

type FamilyController struct {
	familyRepo    repositories.FamilyRepository
	secondaryRepo repositories.SecondaryFamilyRepository
	memberRepo    repositories.MemberRepository
	services      controllers.Services
	log           logger.Logger
}

func New(
	familyRepo repositories.FamilyRepository,
	secondaryRepo repositories.SecondaryFamilyRepository,
	memberRepo repositories.MemberRepository,
	services controllers.Services,
) *FamilyController {
	return &FamilyController{
		familyRepo:    familyRepo,
		secondaryRepo: secondaryRepo,
		memberRepo:    memberRepo,
		services:      services,
		log:           logger.New("FamilyController"),
	}
}

func (fc *FamilyController) GetAll(ctx context.Context) ([]FamilyView, error) {
	families, err := fc.familyRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return fc.withRelations(ctx, families)
}

func (fc *FamilyController) Get(ctx context.Context, id int) (FamilyView, error) {
	family, err := fc.familyRepo.GetView(ctx, id)
	if err != nil {
		return FamilyView{}, err
	}

	families, err := fc.withRelations(ctx, []FamilyView{*family})
	if err != nil {
		return FamilyView{}, err
	}
	return families[0], nil
}

func (fc *FamilyController) withRelations(ctx context.Context, families []FamilyView) ([]FamilyView, error) {
	log := fc.log.Function("withRelations")

	ids := make([]int, len(families))
	for i := range families {
		ids[i] = families[i].ID
	}

	children, err := fc.familyRepo.Children(ctx, ids...)
	if err != nil {
		return nil, log.Err("failed to load children", err)
	}

	secondary, err := fc.familyRepo.Secondary(ctx, ids...)
	if err != nil {
		return nil, log.Err("failed to load secondary family members", err)
	}

	for i := range families {
		families[i].Children = children[families[i].ID]
		if families[i].Children == nil {
			families[i].Children = []FamilyChildView{}
		}
		families[i].Secondary = secondary[families[i].ID]
		if families[i].Secondary == nil {
			families[i].Secondary = []SecondaryFamilyMember{}
		}
	}

	return families, nil
}

func (fc *FamilyController) Create(ctx context.Context, req FamilyMemberRequest) (FamilyView, error) {
	log := fc.log.Function("Create")

	if err := fc.services.Validator.Struct(req); err != nil {
		return FamilyView{}, log.Err("invalid family member", err)
	}

	var family FamilyMember
	req.Apply(&family)

	err := fc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		if err := controllers.CheckIdentity(txCtx, fc.familyRepo, rules.KindFamilyMember, family.Identity, nil); err != nil {
			return err
		}
		return fc.familyRepo.Create(txCtx, &family)
	})
	if err != nil {
		return FamilyView{}, log.Err("failed to create family member", err)
	}

	fc.services.Committed(ctx, EntityFamily, ActionCreated, family.ID)
	return fc.Get(ctx, family.ID)
}

func (fc *FamilyController) Update(ctx context.Context, id int, req FamilyMemberRequest) (FamilyView, error) {
	log := fc.log.Function("Update")

	if err := fc.services.Validator.Struct(req); err != nil {
		return FamilyView{}, log.Err("invalid family member", err, "id", id)
	}

	err := fc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		existing, err := fc.familyRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		family := *existing
		req.Apply(&family)

		if err := controllers.CheckIdentity(txCtx, fc.familyRepo, rules.KindFamilyMember, family.Identity, &id); err != nil {
			return err
		}
		return fc.familyRepo.Update(txCtx, id, &family)
	})
	if err != nil {
		return FamilyView{}, log.Err("failed to update family member", err, "id", id)
	}

	fc.services.Committed(ctx, EntityFamily, ActionUpdated, id)
	return fc.Get(ctx, id)
}

func (fc *FamilyController) Delete(ctx context.Context, id int) error {
	if err := fc.familyRepo.Delete(ctx, id); err != nil {
		return fc.log.Function("Delete").Err("failed to delete family member", err, "id", id)
	}

	fc.services.Committed(ctx, EntityFamily, ActionDeleted, id)
	return nil
}

func (fc *FamilyController) AddChild(ctx context.Context, id int, req FamilyChildRequest) (FamilyView, error) {
	log := fc.log.Function("AddChild")

	if err := fc.services.Validator.Struct(req); err != nil {
		return FamilyView{}, log.Err("invalid family link", err, "id", id)
	}

	err := fc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		if _, err := fc.familyRepo.GetByID(txCtx, id); err != nil {
			return err
		}
		if _, err := fc.memberRepo.GetByID(txCtx, req.MemberID); err != nil {
			return err
		}
		return fc.familyRepo.AddChild(txCtx, &FamilyMemberChild{
			FamilyID:     id,
			MemberID:     req.MemberID,
			Relationship: req.Relationship,
		})
	})
	if err != nil {
		return FamilyView{}, log.Err("failed to link child", err, "id", id, "memberID", req.MemberID)
	}

	fc.services.Committed(ctx, EntityFamily, ActionUpdated, id)
	return fc.Get(ctx, id)
}

func (fc *FamilyController) RemoveChild(ctx context.Context, id, memberID int) (FamilyView, error) {
	if err := fc.familyRepo.RemoveChild(ctx, id, memberID); err != nil {
		return FamilyView{}, fc.log.Function("RemoveChild").Err("failed to unlink child", err, "id", id, "memberID", memberID)
	}

	fc.services.Committed(ctx, EntityFamily, ActionUpdated, id)
	return fc.Get(ctx, id)
}

func (fc *FamilyController) AddSecondary(ctx context.Context, id int, req SecondaryFamilyMemberRequest) (SecondaryFamilyMember, error) {
	log := fc.log.Function("AddSecondary")

	if err := fc.services.Validator.Struct(req); err != nil {
		return SecondaryFamilyMember{}, log.Err("invalid secondary family member", err, "id", id)
	}

	secondary := SecondaryFamilyMember{PrimaryFamilyID: id}
	req.Apply(&secondary)

	if err := fc.secondaryRepo.Create(ctx, &secondary); err != nil {
		return SecondaryFamilyMember{}, log.Err("failed to create secondary family member", err, "id", id)
	}

	fc.services.Committed(ctx, EntitySecondary, ActionCreated, secondary.ID)
	return secondary, nil
}

func (fc *FamilyController) GetSecondary(ctx context.Context, id int) (*SecondaryFamilyMember, error) {
	return fc.secondaryRepo.GetByID(ctx, id)
}

func (fc *FamilyController) UpdateSecondary(ctx context.Context, id int, req SecondaryFamilyMemberRequest) (SecondaryFamilyMember, error) {
	log := fc.log.Function("UpdateSecondary")

	if err := fc.services.Validator.Struct(req); err != nil {
		return SecondaryFamilyMember{}, log.Err("invalid secondary family member", err, "id", id)
	}

	var secondary SecondaryFamilyMember
	err := fc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		existing, err := fc.secondaryRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		secondary = *existing
		req.Apply(&secondary)
		return fc.secondaryRepo.Update(txCtx, id, &secondary)
	})
	if err != nil {
		return SecondaryFamilyMember{}, log.Err("failed to update secondary family member", err, "id", id)
	}

	fc.services.Committed(ctx, EntitySecondary, ActionUpdated, id)
	return secondary, nil
}

func (fc *FamilyController) DeleteSecondary(ctx context.Context, id int) error {
	if err := fc.secondaryRepo.Delete(ctx, id); err != nil {
		return fc.log.Function("DeleteSecondary").Err("failed to delete secondary family member", err, "id", id)
	}

	fc.services.Committed(ctx, EntitySecondary, ActionDeleted, id)
	return nil
}
