package repositories

import (
	"context"

	"clubmanager/internal/apperrors"
	"clubmanager/internal/database"
	. "clubmanager/internal/models"

	"gorm.io/gorm"
)

type TeamRepository interface {
	GetAll(ctx context.Context) ([]TeamView, error)
	GetView(ctx context.Context, id int) (*TeamView, error)
	GetByID(ctx context.Context, id int) (*TeamFormation, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, team *TeamFormation) error
	Update(ctx context.Context, id int, team *TeamFormation) error
	Delete(ctx context.Context, id int) error
	Roster(ctx context.Context, teamIDs ...int) (map[int][]RosterEntry, error)
	IsOnRoster(ctx context.Context, teamID, memberID int) (bool, error)
	AddMember(ctx context.Context, member *TeamMember) error
	RemoveMember(ctx context.Context, teamID, memberID int) error
	CountActive(ctx context.Context, on Date) (int64, error)
}

type teamRepository struct {
	entityStore[TeamFormation]
}

func NewTeam(db database.DB) TeamRepository {
	return &teamRepository{
		entityStore: newEntityStore[TeamFormation](db, EntityTeam, "teamRepository"),
	}
}

func (r *teamRepository) views(ctx context.Context) *gorm.DB {
	return r.getDB(ctx).
		Table("team_formations").
		Select("team_formations.*, personnel.first_name || ' ' || personnel.last_name AS head_coach_name, locations.name AS location_name").
		Joins("LEFT JOIN personnel ON personnel.id = team_formations.head_coach_id").
		Joins("LEFT JOIN locations ON locations.id = team_formations.location_id")
}

func (r *teamRepository) GetAll(ctx context.Context) ([]TeamView, error) {
	log := r.log.Function("GetAll")

	var teams []TeamView
	if err := r.views(ctx).Order("team_formations.team_name").Scan(&teams).Error; err != nil {
		return nil, log.Err("failed to get teams", err)
	}

	return teams, nil
}

func (r *teamRepository) GetView(ctx context.Context, id int) (*TeamView, error) {
	log := r.log.Function("GetView")

	var teams []TeamView
	if err := r.views(ctx).Where("team_formations.id = ?", id).Limit(1).Scan(&teams).Error; err != nil {
		return nil, log.Err("failed to get team", err, "id", id)
	}
	if len(teams) == 0 {
		return nil, log.Err("failed to get team", apperrors.NotFound(r.entity, id), "id", id)
	}

	return &teams[0], nil
}

func (r *teamRepository) Roster(ctx context.Context, teamIDs ...int) (map[int][]RosterEntry, error) {
	log := r.log.Function("Roster")

	result := make(map[int][]RosterEntry, len(teamIDs))
	if len(teamIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		TeamID int
		RosterEntry
	}
	err := r.getDB(ctx).
		Table("team_members").
		Select("team_members.team_id, team_members.member_id, team_members.role, club_members.first_name, club_members.last_name, club_members.gender, club_members.email").
		Joins("JOIN club_members ON club_members.id = team_members.member_id").
		Where("team_members.team_id IN ?", teamIDs).
		Order("club_members.last_name, club_members.first_name").
		Scan(&rows).Error
	if err != nil {
		return nil, log.Err("failed to get roster", err)
	}

	for _, row := range rows {
		result[row.TeamID] = append(result[row.TeamID], row.RosterEntry)
	}
	return result, nil
}

func (r *teamRepository) IsOnRoster(ctx context.Context, teamID, memberID int) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&TeamMember{}).
		Where("team_id = ? AND member_id = ?", teamID, memberID).
		Count(&count).Error
	if err != nil {
		return false, r.log.Function("IsOnRoster").Err("failed to check roster", err, "teamID", teamID, "memberID", memberID)
	}
	return count > 0, nil
}

func (r *teamRepository) AddMember(ctx context.Context, member *TeamMember) error {
	log := r.log.Function("AddMember")

	if err := r.getDB(ctx).Create(member).Error; err != nil {
		return log.Err("failed to add team member", r.translateLink(err, "roster entry"), "teamID", member.TeamID, "memberID", member.MemberID)
	}

	return nil
}

func (r *teamRepository) RemoveMember(ctx context.Context, teamID, memberID int) error {
	log := r.log.Function("RemoveMember")

	result := r.getDB(ctx).Where("team_id = ? AND member_id = ?", teamID, memberID).Delete(&TeamMember{})
	if result.Error != nil {
		return log.Err("failed to remove team member", result.Error, "teamID", teamID, "memberID", memberID)
	}
	if result.RowsAffected == 0 {
		return log.Err("failed to remove team member", apperrors.NotFound("roster entry", memberID), "teamID", teamID)
	}

	return nil
}

func (r *teamRepository) CountActive(ctx context.Context, on Date) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&TeamFormation{}).
		Where("start_date <= ? AND (end_date IS NULL OR end_date >= ?)", on, on).
		Count(&count).Error
	if err != nil {
		return 0, r.log.Function("CountActive").Err("failed to count active teams", err)
	}
	return count, nil
}
