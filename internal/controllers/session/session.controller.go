package sessionController

import (
	"context"

	"clubmanager/internal/controllers"
	"clubmanager/internal/logger"
	. "clubmanager/internal/models"
	"clubmanager/internal/repositories"
	"clubmanager/internal/rules"
	"clubmanager/internal/services"
)

const upcomingLimit = 10

type SessionController struct {
	sessionRepo  repositories.SessionRepository
	teamRepo     repositories.TeamRepository
	emailLogRepo repositories.EmailLogRepository
	notifier     *services.NotificationService
	services     controllers.Services
	log          logger.Logger
}

func New(
	sessionRepo repositories.SessionRepository,
	teamRepo repositories.TeamRepository,
	emailLogRepo repositories.EmailLogRepository,
	notifier *services.NotificationService,
	services controllers.Services,
) *SessionController {
	return &SessionController{
		sessionRepo:  sessionRepo,
		teamRepo:     teamRepo,
		emailLogRepo: emailLogRepo,
		notifier:     notifier,
		services:     services,
		log:          logger.New("SessionController"),
	}
}

func (sc *SessionController) GetAll(ctx context.Context) ([]SessionView, error) {
	return sc.sessionRepo.GetAll(ctx)
}

// GetUpcoming lists the next sessions from today on.
func (sc *SessionController) GetUpcoming(ctx context.Context) ([]SessionView, error) {
	return sc.sessionRepo.GetUpcoming(ctx, sc.services.Today(), upcomingLimit)
}

func (sc *SessionController) Get(ctx context.Context, id int) (*Session, error) {
	return sc.sessionRepo.GetByID(ctx, id)
}

func (sc *SessionController) Create(ctx context.Context, req SessionRequest) (Session, error) {
	log := sc.log.Function("Create")

	if err := sc.services.Validator.Struct(req); err != nil {
		return Session{}, log.Err("invalid session", err)
	}

	var session Session
	req.Apply(&session)

	err := sc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		teams, err := sc.prepare(txCtx, session)
		if err != nil {
			return err
		}

		if err := sc.sessionRepo.Create(txCtx, &session); err != nil {
			return err
		}

		return sc.notify(txCtx, session, teams)
	})
	if err != nil {
		return Session{}, log.Err("failed to create session", err)
	}

	sc.services.Committed(ctx, EntitySession, ActionCreated, session.ID)
	return session, nil
}

func (sc *SessionController) Update(ctx context.Context, id int, req SessionRequest) (Session, error) {
	log := sc.log.Function("Update")

	if err := sc.services.Validator.Struct(req); err != nil {
		return Session{}, log.Err("invalid session", err, "id", id)
	}

	var session Session
	err := sc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		existing, err := sc.sessionRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		session = *existing
		req.Apply(&session)

		if _, err := sc.prepare(txCtx, session); err != nil {
			return err
		}

		return sc.sessionRepo.Update(txCtx, id, &session)
	})
	if err != nil {
		return Session{}, log.Err("failed to update session", err, "id", id)
	}

	sc.services.Committed(ctx, EntitySession, ActionUpdated, id)
	return session, nil
}

func (sc *SessionController) Delete(ctx context.Context, id int) error {
	if err := sc.sessionRepo.Delete(ctx, id); err != nil {
		return sc.log.Function("Delete").Err("failed to delete session", err, "id", id)
	}

	sc.services.Committed(ctx, EntitySession, ActionDeleted, id)
	return nil
}

// sessionTeam is a participating team with its roster.
type sessionTeam struct {
	team   TeamFormation
	roster []RosterEntry
}

// prepare checks the teams of a session and that none of their players
// would end up with two sessions less than three hours apart.
func (sc *SessionController) prepare(ctx context.Context, session Session) ([]sessionTeam, error) {
	if err := rules.CheckSessionTeams(session.SessionType, session.Team1ID, session.Team2ID); err != nil {
		return nil, err
	}

	ids := session.TeamIDs()
	rosters, err := sc.teamRepo.Roster(ctx, ids...)
	if err != nil {
		return nil, err
	}

	teams := make([]sessionTeam, 0, len(ids))
	for _, teamID := range ids {
		team, err := sc.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		teams = append(teams, sessionTeam{team: *team, roster: rosters[teamID]})
	}

	for _, team := range teams {
		for _, entry := range team.roster {
			existing, err := sc.sessionRepo.ForMemberOn(ctx, entry.MemberID, session.SessionDate)
			if err != nil {
				return nil, err
			}
			if err := rules.CheckScheduleConflict(session, existing); err != nil {
				return nil, err
			}
		}
	}

	return teams, nil
}

// notify records a session notice for every rostered player with an email
// address.
func (sc *SessionController) notify(ctx context.Context, session Session, teams []sessionTeam) error {
	now := sc.services.Now()

	var logs []EmailLog
	for i, team := range teams {
		notice := services.SessionNotice{
			Session:    session,
			TeamName:   team.team.TeamName,
			LocationID: session.LocationID,
			Recipients: team.roster,
		}
		if notice.LocationID == nil {
			notice.LocationID = team.team.LocationID
		}
		if len(teams) == 2 {
			notice.OpponentName = teams[1-i].team.TeamName
		}

		logs = append(logs, sc.notifier.SessionNotices(notice, now)...)
	}

	return sc.emailLogRepo.CreateBatch(ctx, logs)
}
