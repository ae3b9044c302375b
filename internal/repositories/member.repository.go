package repositories

import (
	"context"

	"clubmanager/internal/apperrors"
	"clubmanager/internal/database"
	. "clubmanager/internal/models"

	"gorm.io/gorm"
)

type MemberRepository interface {
	GetAll(ctx context.Context) ([]MemberView, error)
	GetActive(ctx context.Context) ([]MemberView, error)
	GetView(ctx context.Context, id int) (*MemberView, error)
	GetByID(ctx context.Context, id int) (*ClubMember, error)
	GetForUpdate(ctx context.Context, id int) (*ClubMember, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, member *ClubMember) error
	Update(ctx context.Context, id int, member *ClubMember) error
	Delete(ctx context.Context, id int) error
	SSNTaken(ctx context.Context, ssn string, excludeID *int) (bool, error)
	MedicareCardTaken(ctx context.Context, card string, excludeID *int) (bool, error)
	Hobbies(ctx context.Context, memberIDs ...int) (map[int][]Hobby, error)
	AddHobby(ctx context.Context, memberID, hobbyID int) error
	RemoveHobby(ctx context.Context, memberID, hobbyID int) error
	MoveLocation(ctx context.Context, id int, locationID *int, on Date) error
	LocationHistory(ctx context.Context, id int) ([]LocationHistory, error)
	CountActive(ctx context.Context) (int64, error)
	RecentRegistrations(ctx context.Context, limit int) ([]Activity, error)
}

type memberRepository struct {
	entityStore[ClubMember]
}

func NewMember(db database.DB) MemberRepository {
	return &memberRepository{
		entityStore: newEntityStore[ClubMember](db, EntityMember, "memberRepository"),
	}
}

const memberViewColumns = "club_members.*, locations.name AS location_name"

func (r *memberRepository) views(ctx context.Context) *gorm.DB {
	return r.getDB(ctx).
		Table("club_members").
		Select(memberViewColumns).
		Joins("LEFT JOIN locations ON locations.id = club_members.location_id")
}

func (r *memberRepository) GetAll(ctx context.Context) ([]MemberView, error) {
	log := r.log.Function("GetAll")

	var members []MemberView
	if err := r.views(ctx).Order("club_members.last_name, club_members.first_name").Scan(&members).Error; err != nil {
		return nil, log.Err("failed to get members", err)
	}

	return members, nil
}

func (r *memberRepository) GetActive(ctx context.Context) ([]MemberView, error) {
	log := r.log.Function("GetActive")

	var members []MemberView
	err := r.views(ctx).
		Where("club_members.status = ?", StatusActive).
		Order("club_members.last_name, club_members.first_name").
		Scan(&members).Error
	if err != nil {
		return nil, log.Err("failed to get active members", err)
	}

	return members, nil
}

func (r *memberRepository) GetView(ctx context.Context, id int) (*MemberView, error) {
	log := r.log.Function("GetView")

	var members []MemberView
	if err := r.views(ctx).Where("club_members.id = ?", id).Limit(1).Scan(&members).Error; err != nil {
		return nil, log.Err("failed to get member", err, "id", id)
	}
	if len(members) == 0 {
		return nil, log.Err("failed to get member", apperrors.NotFound(r.entity, id), "id", id)
	}

	return &members[0], nil
}

func (r *memberRepository) SSNTaken(ctx context.Context, ssn string, excludeID *int) (bool, error) {
	return r.taken(ctx, "ssn", ssn, excludeID)
}

func (r *memberRepository) MedicareCardTaken(ctx context.Context, card string, excludeID *int) (bool, error) {
	return r.taken(ctx, "medicare_card", card, excludeID)
}

func (r *memberRepository) Hobbies(ctx context.Context, memberIDs ...int) (map[int][]Hobby, error) {
	log := r.log.Function("Hobbies")

	result := make(map[int][]Hobby, len(memberIDs))
	if len(memberIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		MemberID int
		Hobby
	}
	err := r.getDB(ctx).
		Table("member_hobbies").
		Select("member_hobbies.member_id, hobbies.*").
		Joins("JOIN hobbies ON hobbies.id = member_hobbies.hobby_id").
		Where("member_hobbies.member_id IN ?", memberIDs).
		Order("hobbies.name").
		Scan(&rows).Error
	if err != nil {
		return nil, log.Err("failed to get hobbies", err)
	}

	for _, row := range rows {
		result[row.MemberID] = append(result[row.MemberID], row.Hobby)
	}
	return result, nil
}

func (r *memberRepository) AddHobby(ctx context.Context, memberID, hobbyID int) error {
	log := r.log.Function("AddHobby")

	link := MemberHobby{MemberID: memberID, HobbyID: hobbyID}
	if err := r.getDB(ctx).Create(&link).Error; err != nil {
		return log.Err("failed to add hobby", r.translateLink(err, "hobby link"), "memberID", memberID, "hobbyID", hobbyID)
	}

	return nil
}

func (r *memberRepository) RemoveHobby(ctx context.Context, memberID, hobbyID int) error {
	log := r.log.Function("RemoveHobby")

	result := r.getDB(ctx).Where("member_id = ? AND hobby_id = ?", memberID, hobbyID).Delete(&MemberHobby{})
	if result.Error != nil {
		return log.Err("failed to remove hobby", result.Error, "memberID", memberID, "hobbyID", hobbyID)
	}
	if result.RowsAffected == 0 {
		return log.Err("failed to remove hobby", apperrors.NotFound("hobby link", hobbyID), "memberID", memberID)
	}

	return nil
}

func (r *memberRepository) MoveLocation(ctx context.Context, id int, locationID *int, on Date) error {
	if err := memberHistory.moveLocation(r.getDB(ctx), id, locationID, on); err != nil {
		return r.log.Function("MoveLocation").Err("failed to record location change", r.translate(err, id), "id", id)
	}
	return nil
}

func (r *memberRepository) LocationHistory(ctx context.Context, id int) ([]LocationHistory, error) {
	history, err := memberHistory.list(r.getDB(ctx), id)
	if err != nil {
		return nil, r.log.Function("LocationHistory").Err("failed to get location history", err, "id", id)
	}
	return history, nil
}

func (r *memberRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&ClubMember{}).Where("status = ?", StatusActive).Count(&count).Error
	if err != nil {
		return 0, r.log.Function("CountActive").Err("failed to count active members", err)
	}
	return count, nil
}

func (r *memberRepository) RecentRegistrations(ctx context.Context, limit int) ([]Activity, error) {
	log := r.log.Function("RecentRegistrations")

	var activity []Activity
	err := r.getDB(ctx).
		Table("club_members").
		Select("club_members.id, club_members.first_name, club_members.last_name, club_members.join_date, club_members.created_at, locations.name AS location_name").
		Joins("LEFT JOIN locations ON locations.id = club_members.location_id").
		Order("club_members.created_at DESC, club_members.id DESC").
		Limit(limit).
		Scan(&activity).Error
	if err != nil {
		return nil, log.Err("failed to get recent registrations", err)
	}

	return activity, nil
}
