package teamController

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clubmanager/internal/apperrors"
	"clubmanager/internal/controllers/controllertest"
	. "clubmanager/internal/models"
	"clubmanager/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

type fixture struct {
	controller *TeamController
	members    repositories.MemberRepository
	sessions   repositories.SessionRepository
	seq        int
}

func newFixture(t *testing.T) *fixture {
	env := controllertest.New(t)
	members := repositories.NewMember(env.DB)
	sessions := repositories.NewSession(env.DB)

	return &fixture{
		members:    members,
		sessions:   sessions,
		controller: New(repositories.NewTeam(env.DB), members, sessions, env.Services),
	}
}

func (f *fixture) member(t *testing.T, gender Gender) ClubMember {
	t.Helper()
	f.seq++

	member := ClubMember{
		FirstName: fmt.Sprintf("Player%d", f.seq),
		LastName:  "Tester",
		DOB:       NewDate(2000, time.January, 1),
		Identity:  Identity{SSN: fmt.Sprintf("SSN-%d", f.seq), MedicareCard: fmt.Sprintf("MED-%d", f.seq)},
		Gender:    gender,
		Status:    StatusActive,
		JoinDate:  NewDate(2024, time.January, 1),
	}
	require.NoError(t, f.members.Create(ctx, &member))
	return member
}

func (f *fixture) team(t *testing.T, name string, gender Gender) TeamView {
	t.Helper()

	team, err := f.controller.Create(ctx, TeamRequest{
		TeamName:  name,
		StartDate: NewDate(2025, time.January, 1),
		Gender:    gender,
	})
	require.NoError(t, err)
	return team
}

func (f *fixture) training(t *testing.T, teamID int, day Date, hour, minute int) Session {
	t.Helper()

	session := Session{
		Team1ID:     teamID,
		SessionDate: day,
		StartTime:   NewClockTime(hour, minute),
		SessionType: SessionTraining,
	}
	require.NoError(t, f.sessions.Create(ctx, &session))
	return session
}

func TestTeamController_AddMember(t *testing.T) {
	f := newFixture(t)
	team := f.team(t, "Falcons", GenderFemale)
	player := f.member(t, GenderFemale)

	roster, err := f.controller.AddMember(ctx, team.ID, TeamMemberRequest{MemberID: player.ID, Role: RoleLibero})
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, player.ID, roster[0].MemberID)
	assert.Equal(t, RoleLibero, roster[0].Role)

	view, err := f.controller.Get(ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, view.Members, 1)
}

func TestTeamController_AddMemberRules(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, f *fixture, team TeamView) TeamMemberRequest
		kind  apperrors.Kind
		code  apperrors.Code
	}{
		{
			name: "gender mismatch",
			setup: func(t *testing.T, f *fixture, team TeamView) TeamMemberRequest {
				return TeamMemberRequest{MemberID: f.member(t, GenderMale).ID, Role: RoleSetter}
			},
			kind: apperrors.KindBusinessRule,
			code: apperrors.CodeGenderMismatch,
		},
		{
			name: "already on the team",
			setup: func(t *testing.T, f *fixture, team TeamView) TeamMemberRequest {
				req := TeamMemberRequest{MemberID: f.member(t, GenderFemale).ID, Role: RoleSetter}
				_, err := f.controller.AddMember(ctx, team.ID, req)
				require.NoError(t, err)
				return req
			},
			kind: apperrors.KindBusinessRule,
			code: apperrors.CodeAlreadyOnTeam,
		},
		{
			name: "unknown member",
			setup: func(t *testing.T, f *fixture, team TeamView) TeamMemberRequest {
				return TeamMemberRequest{MemberID: 404, Role: RoleSetter}
			},
			kind: apperrors.KindNotFound,
			code: apperrors.CodeNotFound,
		},
		{
			name: "invalid role",
			setup: func(t *testing.T, f *fixture, team TeamView) TeamMemberRequest {
				return TeamMemberRequest{MemberID: f.member(t, GenderFemale).ID, Role: "Goalkeeper"}
			},
			kind: apperrors.KindValidation,
			code: apperrors.CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			team := f.team(t, "Falcons", GenderFemale)

			req := tt.setup(t, f, team)
			_, err := f.controller.AddMember(ctx, team.ID, req)

			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, tt.kind), "got %v", err)
			assert.True(t, apperrors.HasCode(err, tt.code), "got %v", err)
		})
	}

	t.Run("unknown team", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.controller.AddMember(ctx, 404, TeamMemberRequest{MemberID: f.member(t, GenderFemale).ID, Role: RoleSetter})
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestTeamController_AddMemberScheduleConflict(t *testing.T) {
	day := NewDate(2025, time.May, 10)

	tests := []struct {
		name     string
		hour     int
		minute   int
		conflict bool
	}{
		{name: "two hours apart", hour: 16, conflict: true},
		{name: "same start time", hour: 14, conflict: true},
		{name: "two hours fifty nine apart", hour: 16, minute: 59, conflict: true},
		{name: "exactly three hours apart", hour: 17, conflict: false},
		{name: "four hours earlier", hour: 10, conflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			falcons := f.team(t, "Falcons", GenderFemale)
			hawks := f.team(t, "Hawks", GenderFemale)
			player := f.member(t, GenderFemale)

			f.training(t, falcons.ID, day, 14, 0)
			f.training(t, hawks.ID, day, tt.hour, tt.minute)

			_, err := f.controller.AddMember(ctx, falcons.ID, TeamMemberRequest{MemberID: player.ID, Role: RoleSetter})
			require.NoError(t, err)

			_, err = f.controller.AddMember(ctx, hawks.ID, TeamMemberRequest{MemberID: player.ID, Role: RoleSetter})
			if tt.conflict {
				require.Error(t, err)
				assert.True(t, apperrors.HasCode(err, apperrors.CodeScheduleConflict))
				assert.Contains(t, err.Error(), "conflicting assignment")

				roster, err := f.controller.Members(ctx, hawks.ID)
				require.NoError(t, err)
				assert.Empty(t, roster)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTeamController_PastSessionsDoNotConflict(t *testing.T) {
	f := newFixture(t)
	falcons := f.team(t, "Falcons", GenderFemale)
	hawks := f.team(t, "Hawks", GenderFemale)
	player := f.member(t, GenderFemale)

	past := NewDate(2025, time.April, 1)
	f.training(t, falcons.ID, past, 14, 0)
	f.training(t, hawks.ID, past, 15, 0)

	_, err := f.controller.AddMember(ctx, falcons.ID, TeamMemberRequest{MemberID: player.ID, Role: RoleSetter})
	require.NoError(t, err)

	_, err = f.controller.AddMember(ctx, hawks.ID, TeamMemberRequest{MemberID: player.ID, Role: RoleSetter})
	assert.NoError(t, err)
}

func TestTeamController_UpdateGender(t *testing.T) {
	f := newFixture(t)
	team := f.team(t, "Falcons", GenderFemale)
	player := f.member(t, GenderFemale)

	_, err := f.controller.AddMember(ctx, team.ID, TeamMemberRequest{MemberID: player.ID, Role: RoleSetter})
	require.NoError(t, err)

	req := NewTeamRequest(team.TeamFormation)
	req.Gender = GenderMale
	_, err = f.controller.Update(ctx, team.ID, req)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeGenderMismatch))

	_, err = f.controller.RemoveMember(ctx, team.ID, player.ID)
	require.NoError(t, err)

	updated, err := f.controller.Update(ctx, team.ID, req)
	require.NoError(t, err)
	assert.Equal(t, GenderMale, updated.Gender)
}
