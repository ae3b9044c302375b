package repositories

import (
	"testing"
	"time"

	. "clubmanager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_ForMemberOn(t *testing.T) {
	db := newTestDB(t)
	repo := NewSession(db)
	teams := NewTeam(db)

	falcons := seedTeam(t, db, "Falcons", GenderFemale)
	hawks := seedTeam(t, db, "Hawks", GenderFemale)
	owls := seedTeam(t, db, "Owls", GenderFemale)
	member := seedMember(t, db, "Ana", GenderFemale, nil)
	require.NoError(t, teams.AddMember(ctx, &TeamMember{TeamID: hawks.ID, MemberID: member.ID, Role: RoleSetter}))

	day := NewDate(2025, time.May, 10)
	asTeam2 := seedSession(t, db, falcons.ID, &hawks.ID, day, 14)
	seedSession(t, db, falcons.ID, &owls.ID, day, 18)
	seedSession(t, db, hawks.ID, nil, day.AddDays(1), 10)

	sessions, err := repo.ForMemberOn(ctx, member.ID, day)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, asTeam2.ID, sessions[0].ID)
	assert.Equal(t, "14:00:00", sessions[0].StartTime.String())

	none, err := repo.ForMemberOn(ctx, member.ID, day.AddDays(2))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSessionRepository_ForTeamFrom(t *testing.T) {
	db := newTestDB(t)
	repo := NewSession(db)

	falcons := seedTeam(t, db, "Falcons", GenderFemale)
	hawks := seedTeam(t, db, "Hawks", GenderFemale)

	day := NewDate(2025, time.May, 10)
	seedSession(t, db, falcons.ID, nil, day.AddDays(-1), 9)
	home := seedSession(t, db, falcons.ID, nil, day, 9)
	away := seedSession(t, db, hawks.ID, &falcons.ID, day.AddDays(3), 9)

	sessions, err := repo.ForTeamFrom(ctx, falcons.ID, day)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, home.ID, sessions[0].ID)
	assert.Equal(t, away.ID, sessions[1].ID)
}

func TestSessionRepository_UpcomingAndCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewSession(db)

	falcons := seedTeam(t, db, "Falcons", GenderFemale)
	hawks := seedTeam(t, db, "Hawks", GenderFemale)

	today := NewDate(2025, time.May, 10)
	seedSession(t, db, falcons.ID, nil, today.AddDays(-2), 9)
	game := seedSession(t, db, falcons.ID, &hawks.ID, today, 19)
	seedSession(t, db, hawks.ID, nil, today.AddDays(8), 9)

	upcoming, err := repo.GetUpcoming(ctx, today, 1)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, game.ID, upcoming[0].ID)
	require.NotNil(t, upcoming[0].Team1Name)
	require.NotNil(t, upcoming[0].Team2Name)
	assert.Equal(t, "Falcons", *upcoming[0].Team1Name)
	assert.Equal(t, "Hawks", *upcoming[0].Team2Name)
	assert.Nil(t, upcoming[0].LocationName)

	count, err := repo.CountBetween(ctx, today, today.AddDays(7))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
