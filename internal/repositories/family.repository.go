package repositories

import (
	"context"

	"clubmanager/internal/apperrors"
	"clubmanager/internal/database"
	. "clubmanager/internal/models"
)

type FamilyRepository interface {
	GetAll(ctx context.Context) ([]FamilyView, error)
	GetView(ctx context.Context, id int) (*FamilyView, error)
	GetByID(ctx context.Context, id int) (*FamilyMember, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, family *FamilyMember) error
	Update(ctx context.Context, id int, family *FamilyMember) error
	Delete(ctx context.Context, id int) error
	SSNTaken(ctx context.Context, ssn string, excludeID *int) (bool, error)
	MedicareCardTaken(ctx context.Context, card string, excludeID *int) (bool, error)
	AddChild(ctx context.Context, link *FamilyMemberChild) error
	RemoveChild(ctx context.Context, familyID, memberID int) error
	Children(ctx context.Context, familyIDs ...int) (map[int][]FamilyChildView, error)
	Secondary(ctx context.Context, familyIDs ...int) (map[int][]SecondaryFamilyMember, error)
}

type SecondaryFamilyRepository interface {
	GetByID(ctx context.Context, id int) (*SecondaryFamilyMember, error)
	Create(ctx context.Context, secondary *SecondaryFamilyMember) error
	Update(ctx context.Context, id int, secondary *SecondaryFamilyMember) error
	Delete(ctx context.Context, id int) error
}

type familyRepository struct {
	entityStore[FamilyMember]
}

func NewFamily(db database.DB) FamilyRepository {
	return &familyRepository{
		entityStore: newEntityStore[FamilyMember](db, EntityFamily, "familyRepository"),
	}
}

func NewSecondaryFamily(db database.DB) SecondaryFamilyRepository {
	store := newEntityStore[SecondaryFamilyMember](db, EntitySecondary, "secondaryFamilyRepository")
	return &store
}

func (r *familyRepository) GetAll(ctx context.Context) ([]FamilyView, error) {
	log := r.log.Function("GetAll")

	var families []FamilyView
	err := r.getDB(ctx).
		Table("family_members").
		Select("family_members.*, locations.name AS location_name").
		Joins("LEFT JOIN locations ON locations.id = family_members.location_id").
		Order("family_members.last_name, family_members.first_name").
		Scan(&families).Error
	if err != nil {
		return nil, log.Err("failed to get families", err)
	}

	return families, nil
}

func (r *familyRepository) GetView(ctx context.Context, id int) (*FamilyView, error) {
	log := r.log.Function("GetView")

	var families []FamilyView
	err := r.getDB(ctx).
		Table("family_members").
		Select("family_members.*, locations.name AS location_name").
		Joins("LEFT JOIN locations ON locations.id = family_members.location_id").
		Where("family_members.id = ?", id).
		Limit(1).
		Scan(&families).Error
	if err != nil {
		return nil, log.Err("failed to get family", err, "id", id)
	}
	if len(families) == 0 {
		return nil, log.Err("failed to get family", apperrors.NotFound(r.entity, id), "id", id)
	}

	return &families[0], nil
}

func (r *familyRepository) SSNTaken(ctx context.Context, ssn string, excludeID *int) (bool, error) {
	return r.taken(ctx, "ssn", ssn, excludeID)
}

func (r *familyRepository) MedicareCardTaken(ctx context.Context, card string, excludeID *int) (bool, error) {
	return r.taken(ctx, "medicare_card", card, excludeID)
}

func (r *familyRepository) AddChild(ctx context.Context, link *FamilyMemberChild) error {
	log := r.log.Function("AddChild")

	if err := r.getDB(ctx).Create(link).Error; err != nil {
		return log.Err("failed to link child", r.translateLink(err, "family link"), "familyID", link.FamilyID, "memberID", link.MemberID)
	}

	return nil
}

func (r *familyRepository) RemoveChild(ctx context.Context, familyID, memberID int) error {
	log := r.log.Function("RemoveChild")

	result := r.getDB(ctx).Where("family_id = ? AND member_id = ?", familyID, memberID).Delete(&FamilyMemberChild{})
	if result.Error != nil {
		return log.Err("failed to unlink child", result.Error, "familyID", familyID, "memberID", memberID)
	}
	if result.RowsAffected == 0 {
		return log.Err("failed to unlink child", apperrors.NotFound("family link", memberID), "familyID", familyID)
	}

	return nil
}

func (r *familyRepository) Children(ctx context.Context, familyIDs ...int) (map[int][]FamilyChildView, error) {
	log := r.log.Function("Children")

	result := make(map[int][]FamilyChildView, len(familyIDs))
	if len(familyIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		FamilyID int
		FamilyChildView
	}
	err := r.getDB(ctx).
		Table("family_member_children").
		Select("family_member_children.family_id, family_member_children.member_id, club_members.first_name, club_members.last_name, family_member_children.relationship").
		Joins("JOIN club_members ON club_members.id = family_member_children.member_id").
		Where("family_member_children.family_id IN ?", familyIDs).
		Order("club_members.first_name").
		Scan(&rows).Error
	if err != nil {
		return nil, log.Err("failed to get children", err)
	}

	for _, row := range rows {
		result[row.FamilyID] = append(result[row.FamilyID], row.FamilyChildView)
	}
	return result, nil
}

func (r *familyRepository) Secondary(ctx context.Context, familyIDs ...int) (map[int][]SecondaryFamilyMember, error) {
	log := r.log.Function("Secondary")

	result := make(map[int][]SecondaryFamilyMember, len(familyIDs))
	if len(familyIDs) == 0 {
		return result, nil
	}

	var secondary []SecondaryFamilyMember
	err := r.getDB(ctx).
		Where("primary_family_id IN ?", familyIDs).
		Order("id").
		Find(&secondary).Error
	if err != nil {
		return nil, log.Err("failed to get secondary family members", err)
	}

	for _, s := range secondary {
		result[s.PrimaryFamilyID] = append(result[s.PrimaryFamilyID], s)
	}
	return result, nil
}
