package teamController

import (
	"context"
	"fmt"

	"clubmanager/internal/apperrors"
	"clubmanager/internal/controllers"
	"clubmanager/internal/logger"
	. "clubmanager/internal/models"
	"clubmanager/internal/repositories"
	"clubmanager/internal/rules"
)

type TeamController struct {
	teamRepo    repositories.TeamRepository
	memberRepo  repositories.MemberRepository
	sessionRepo repositories.SessionRepository
	services    controllers.Services
	log         logger.Logger
}

func New(
	teamRepo repositories.TeamRepository,
	memberRepo repositories.MemberRepository,
	sessionRepo repositories.SessionRepository,
	services controllers.Services,
) *TeamController {
	return &TeamController{
		teamRepo:    teamRepo,
		memberRepo:  memberRepo,
		sessionRepo: sessionRepo,
		services:    services,
		log:         logger.New("TeamController"),
	}
}

func (tc *TeamController) GetAll(ctx context.Context) ([]TeamView, error) {
	teams, err := tc.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return tc.withRoster(ctx, teams)
}

func (tc *TeamController) Get(ctx context.Context, id int) (TeamView, error) {
	team, err := tc.teamRepo.GetView(ctx, id)
	if err != nil {
		return TeamView{}, err
	}

	teams, err := tc.withRoster(ctx, []TeamView{*team})
	if err != nil {
		return TeamView{}, err
	}
	return teams[0], nil
}

func (tc *TeamController) withRoster(ctx context.Context, teams []TeamView) ([]TeamView, error) {
	ids := make([]int, len(teams))
	for i := range teams {
		ids[i] = teams[i].ID
	}

	rosters, err := tc.teamRepo.Roster(ctx, ids...)
	if err != nil {
		return nil, tc.log.Function("withRoster").Err("failed to load rosters", err)
	}

	for i := range teams {
		teams[i].Members = rosters[teams[i].ID]
		if teams[i].Members == nil {
			teams[i].Members = []RosterEntry{}
		}
	}
	return teams, nil
}

func (tc *TeamController) Create(ctx context.Context, req TeamRequest) (TeamView, error) {
	log := tc.log.Function("Create")

	if err := tc.services.Validator.Struct(req); err != nil {
		return TeamView{}, log.Err("invalid team", err)
	}

	var team TeamFormation
	req.Apply(&team)

	if err := tc.teamRepo.Create(ctx, &team); err != nil {
		return TeamView{}, log.Err("failed to create team", err)
	}

	tc.services.Committed(ctx, EntityTeam, ActionCreated, team.ID)
	return tc.Get(ctx, team.ID)
}

func (tc *TeamController) Update(ctx context.Context, id int, req TeamRequest) (TeamView, error) {
	log := tc.log.Function("Update")

	if err := tc.services.Validator.Struct(req); err != nil {
		return TeamView{}, log.Err("invalid team", err, "id", id)
	}

	err := tc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		existing, err := tc.teamRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		team := *existing
		req.Apply(&team)

		if team.Gender != existing.Gender {
			if err := tc.checkRosterGender(txCtx, team); err != nil {
				return err
			}
		}

		return tc.teamRepo.Update(txCtx, id, &team)
	})
	if err != nil {
		return TeamView{}, log.Err("failed to update team", err, "id", id)
	}

	tc.services.Committed(ctx, EntityTeam, ActionUpdated, id)
	return tc.Get(ctx, id)
}

// checkRosterGender keeps a team's gender consistent with the players
// already on it.
func (tc *TeamController) checkRosterGender(ctx context.Context, team TeamFormation) error {
	rosters, err := tc.teamRepo.Roster(ctx, team.ID)
	if err != nil {
		return err
	}

	for _, entry := range rosters[team.ID] {
		if err := rules.CheckTeamGender(entry.Gender, team.Gender); err != nil {
			return err
		}
	}
	return nil
}

func (tc *TeamController) Delete(ctx context.Context, id int) error {
	if err := tc.teamRepo.Delete(ctx, id); err != nil {
		return tc.log.Function("Delete").Err("failed to delete team", err, "id", id)
	}

	tc.services.Committed(ctx, EntityTeam, ActionDeleted, id)
	return nil
}

func (tc *TeamController) Members(ctx context.Context, id int) ([]RosterEntry, error) {
	team, err := tc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return team.Members, nil
}

// AddMember puts a member on the team roster. The member must match the
// team's gender, must not already be on it, and must be free for every
// upcoming session of the team.
func (tc *TeamController) AddMember(ctx context.Context, id int, req TeamMemberRequest) ([]RosterEntry, error) {
	log := tc.log.Function("AddMember")

	if err := tc.services.Validator.Struct(req); err != nil {
		return nil, log.Err("invalid team member", err, "id", id)
	}

	err := tc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		team, err := tc.teamRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		member, err := tc.memberRepo.GetByID(txCtx, req.MemberID)
		if err != nil {
			return err
		}

		if err := rules.CheckTeamGender(member.Gender, team.Gender); err != nil {
			return err
		}

		onRoster, err := tc.teamRepo.IsOnRoster(txCtx, id, member.ID)
		if err != nil {
			return err
		}
		if onRoster {
			return apperrors.BusinessRule(
				apperrors.CodeAlreadyOnTeam,
				fmt.Sprintf("%s is already on %s", member.FullName(), team.TeamName),
			)
		}

		upcoming, err := tc.sessionRepo.ForTeamFrom(txCtx, id, tc.services.Today())
		if err != nil {
			return err
		}

		for _, session := range upcoming {
			existing, err := tc.sessionRepo.ForMemberOn(txCtx, member.ID, session.SessionDate)
			if err != nil {
				return err
			}
			if err := rules.CheckScheduleConflict(session, existing); err != nil {
				return err
			}
		}

		return tc.teamRepo.AddMember(txCtx, &TeamMember{TeamID: id, MemberID: member.ID, Role: req.Role})
	})
	if err != nil {
		return nil, log.Err("failed to add team member", err, "id", id, "memberID", req.MemberID)
	}

	tc.services.Committed(ctx, EntityTeam, ActionUpdated, id)
	return tc.Members(ctx, id)
}

func (tc *TeamController) RemoveMember(ctx context.Context, id, memberID int) ([]RosterEntry, error) {
	if err := tc.teamRepo.RemoveMember(ctx, id, memberID); err != nil {
		return nil, tc.log.Function("RemoveMember").Err("failed to remove team member", err, "id", id, "memberID", memberID)
	}

	tc.services.Committed(ctx, EntityTeam, ActionUpdated, id)
	return tc.Members(ctx, id)
}
