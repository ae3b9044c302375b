package repositories

import (
	"testing"
	"time"

	"clubmanager/internal/apperrors"
	. "clubmanager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRepository_Roster(t *testing.T) {
	db := newTestDB(t)
	repo := NewTeam(db)

	team := seedTeam(t, db, "Falcons", GenderFemale)
	ana := seedMember(t, db, "Ana", GenderFemale, nil)
	bea := seedMember(t, db, "Bea", GenderFemale, nil)

	require.NoError(t, repo.AddMember(ctx, &TeamMember{TeamID: team.ID, MemberID: ana.ID, Role: RoleSetter}))
	require.NoError(t, repo.AddMember(ctx, &TeamMember{TeamID: team.ID, MemberID: bea.ID, Role: RoleLibero}))

	err := repo.AddMember(ctx, &TeamMember{TeamID: team.ID, MemberID: ana.ID, Role: RoleLibero})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeDuplicateAssociation))

	onRoster, err := repo.IsOnRoster(ctx, team.ID, ana.ID)
	require.NoError(t, err)
	assert.True(t, onRoster)

	roster, err := repo.Roster(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, roster[team.ID], 2)
	assert.Equal(t, "Ana", roster[team.ID][0].FirstName)
	assert.Equal(t, RoleSetter, roster[team.ID][0].Role)
	assert.Equal(t, "Ana@example.com", roster[team.ID][0].Email)
	assert.Equal(t, GenderFemale, roster[team.ID][1].Gender)

	require.NoError(t, repo.RemoveMember(ctx, team.ID, ana.ID))
	err = repo.RemoveMember(ctx, team.ID, ana.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	onRoster, err = repo.IsOnRoster(ctx, team.ID, ana.ID)
	require.NoError(t, err)
	assert.False(t, onRoster)
}

func TestTeamRepository_Views(t *testing.T) {
	db := newTestDB(t)
	repo := NewTeam(db)
	location := seedLocation(t, db, "Verdun")

	coach := Personnel{
		FirstName:  "Carla",
		LastName:   "Coach",
		Identity:   nextIdentity(),
		Mandate:    MandateVolunteer,
		LocationID: &location.ID,
	}
	require.NoError(t, NewPersonnel(db).Create(ctx, &coach))

	team := TeamFormation{
		TeamName:    "Falcons",
		HeadCoachID: &coach.ID,
		LocationID:  &location.ID,
		StartDate:   NewDate(2025, time.January, 1),
		Gender:      GenderFemale,
	}
	require.NoError(t, repo.Create(ctx, &team))

	view, err := repo.GetView(ctx, team.ID)
	require.NoError(t, err)
	require.NotNil(t, view.HeadCoachName)
	assert.Equal(t, "Carla Coach", *view.HeadCoachName)
	require.NotNil(t, view.LocationName)
	assert.Equal(t, "Verdun", *view.LocationName)

	_, err = repo.GetView(ctx, 999)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestTeamRepository_CountActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewTeam(db)

	seedTeam(t, db, "Running", GenderMale)

	ended := seedTeam(t, db, "Ended", GenderMale)
	ended.EndDate = func() *Date { d := NewDate(2025, time.February, 1); return &d }()
	require.NoError(t, repo.Update(ctx, ended.ID, &ended))

	tests := []struct {
		name     string
		on       Date
		expected int64
	}{
		{name: "before any team starts", on: NewDate(2024, time.June, 1), expected: 0},
		{name: "both running", on: NewDate(2025, time.January, 15), expected: 2},
		{name: "last day of the ended team", on: NewDate(2025, time.February, 1), expected: 2},
		{name: "after one ended", on: NewDate(2025, time.March, 1), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := repo.CountActive(ctx, tt.on)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, count)
		})
	}
}
