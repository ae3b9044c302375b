package repositories

import (
	"context"

	"clubmanager/internal/database"
	. "clubmanager/internal/models"

	"gorm.io/gorm"
)

type SessionRepository interface {
	GetAll(ctx context.Context) ([]SessionView, error)
	GetUpcoming(ctx context.Context, from Date, limit int) ([]SessionView, error)
	GetByID(ctx context.Context, id int) (*Session, error)
	Create(ctx context.Context, session *Session) error
	Update(ctx context.Context, id int, session *Session) error
	Delete(ctx context.Context, id int) error
	ForTeamFrom(ctx context.Context, teamID int, from Date) ([]Session, error)
	ForMemberOn(ctx context.Context, memberID int, on Date) ([]Session, error)
	CountBetween(ctx context.Context, from, to Date) (int64, error)
}

type sessionRepository struct {
	entityStore[Session]
}

func NewSession(db database.DB) SessionRepository {
	return &sessionRepository{
		entityStore: newEntityStore[Session](db, EntitySession, "sessionRepository"),
	}
}

func (r *sessionRepository) views(ctx context.Context) *gorm.DB {
	return r.getDB(ctx).
		Table("sessions").
		Select("sessions.*, t1.team_name AS team1_name, t2.team_name AS team2_name, locations.name AS location_name").
		Joins("LEFT JOIN team_formations t1 ON t1.id = sessions.team1_id").
		Joins("LEFT JOIN team_formations t2 ON t2.id = sessions.team2_id").
		Joins("LEFT JOIN locations ON locations.id = sessions.location_id")
}

func (r *sessionRepository) GetAll(ctx context.Context) ([]SessionView, error) {
	log := r.log.Function("GetAll")

	var sessions []SessionView
	err := r.views(ctx).
		Order("sessions.session_date DESC, sessions.start_time DESC").
		Scan(&sessions).Error
	if err != nil {
		return nil, log.Err("failed to get sessions", err)
	}

	return sessions, nil
}

func (r *sessionRepository) GetUpcoming(ctx context.Context, from Date, limit int) ([]SessionView, error) {
	log := r.log.Function("GetUpcoming")

	var sessions []SessionView
	err := r.views(ctx).
		Where("sessions.session_date >= ?", from).
		Order("sessions.session_date, sessions.start_time").
		Limit(limit).
		Scan(&sessions).Error
	if err != nil {
		return nil, log.Err("failed to get upcoming sessions", err, "from", from)
	}

	return sessions, nil
}

// ForTeamFrom lists the sessions a team plays in, as either side, from
// the given day on.
func (r *sessionRepository) ForTeamFrom(ctx context.Context, teamID int, from Date) ([]Session, error) {
	log := r.log.Function("ForTeamFrom")

	var sessions []Session
	err := r.getDB(ctx).
		Where("(team1_id = ? OR team2_id = ?) AND session_date >= ?", teamID, teamID, from).
		Order("session_date, start_time").
		Find(&sessions).Error
	if err != nil {
		return nil, log.Err("failed to get team sessions", err, "teamID", teamID)
	}

	return sessions, nil
}

// ForMemberOn lists the sessions on one day involving any team the member
// is rostered on.
func (r *sessionRepository) ForMemberOn(ctx context.Context, memberID int, on Date) ([]Session, error) {
	log := r.log.Function("ForMemberOn")

	teams := r.getDB(ctx).Model(&TeamMember{}).Select("team_id").Where("member_id = ?", memberID)

	var sessions []Session
	err := r.getDB(ctx).
		Where("session_date = ?", on).
		Where("(team1_id IN (?) OR team2_id IN (?))", teams, teams).
		Order("start_time").
		Find(&sessions).Error
	if err != nil {
		return nil, log.Err("failed to get member sessions", err, "memberID", memberID, "on", on)
	}

	return sessions, nil
}

func (r *sessionRepository) CountBetween(ctx context.Context, from, to Date) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&Session{}).
		Where("session_date >= ? AND session_date <= ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, r.log.Function("CountBetween").Err("failed to count sessions", err)
	}
	return count, nil
}
