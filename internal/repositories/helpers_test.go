package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"clubmanager/config"
	"clubmanager/internal/database"
	. "clubmanager/internal/models"

	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func newTestDB(t *testing.T) database.DB {
	t.Helper()

	db, err := database.New(config.Config{
		DatabaseDriver: config.DriverSQLite,
		DatabaseDbPath: filepath.Join(t.TempDir(), "club.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.MigrateUp()
	require.NoError(t, err)
	return db
}

func seedLocation(t *testing.T, db database.DB, name string) Location {
	t.Helper()

	location := Location{Type: LocationBranch, Name: name, City: "Montreal"}
	require.NoError(t, NewLocation(db).Create(ctx, &location))
	return location
}

var identitySeq int

func nextIdentity() Identity {
	identitySeq++
	return Identity{
		SSN:          fmt.Sprintf("SSN-%04d", identitySeq),
		MedicareCard: fmt.Sprintf("MED-%04d", identitySeq),
	}
}

func seedMember(t *testing.T, db database.DB, first string, gender Gender, locationID *int) ClubMember {
	t.Helper()

	member := ClubMember{
		FirstName:  first,
		LastName:   "Tester",
		DOB:        NewDate(2000, time.March, 4),
		Identity:   nextIdentity(),
		Contact:    Contact{Email: first + "@example.com"},
		Gender:     gender,
		Status:     StatusActive,
		JoinDate:   NewDate(2024, time.September, 1),
		LocationID: locationID,
	}
	require.NoError(t, NewMember(db).Create(ctx, &member))
	return member
}

func seedTeam(t *testing.T, db database.DB, name string, gender Gender) TeamFormation {
	t.Helper()

	team := TeamFormation{
		TeamName:  name,
		StartDate: NewDate(2025, time.January, 1),
		Gender:    gender,
	}
	require.NoError(t, NewTeam(db).Create(ctx, &team))
	return team
}

func seedSession(t *testing.T, db database.DB, team1 int, team2 *int, day Date, hour int) Session {
	t.Helper()

	sessionType := SessionTraining
	if team2 != nil {
		sessionType = SessionGame
	}
	session := Session{
		Team1ID:     team1,
		Team2ID:     team2,
		SessionDate: day,
		StartTime:   NewClockTime(hour, 0),
		SessionType: sessionType,
	}
	require.NoError(t, NewSession(db).Create(ctx, &session))
	return session
}
