package services

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"clubmanager/config"
	"clubmanager/internal/database"
	"clubmanager/internal/events"
	. "clubmanager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) database.DB {
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

func countRoles(t *testing.T, db database.DB) int64 {
	var count int64
	require.NoError(t, db.SQL.Table("roles").Count(&count).Error)
	return count
}

func TestTransactionService_Commit(t *testing.T) {
	db := newTestDB(t)
	service := NewTransactionService(db)

	err := service.Execute(context.Background(), func(txCtx context.Context) error {
		tx, ok := GetTransaction(txCtx)
		require.True(t, ok)
		return tx.Create(&Role{Name: "Coach"}).Error
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), countRoles(t, db))
}

func TestTransactionService_Rollback(t *testing.T) {
	db := newTestDB(t)
	service := NewTransactionService(db)
	boom := errors.New("boom")

	err := service.Execute(context.Background(), func(txCtx context.Context) error {
		tx, _ := GetTransaction(txCtx)
		require.NoError(t, tx.Create(&Role{Name: "Coach"}).Error)
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, countRoles(t, db))
}

func TestTransactionService_Nested(t *testing.T) {
	db := newTestDB(t)
	service := NewTransactionService(db)

	err := service.Execute(context.Background(), func(outer context.Context) error {
		outerTx, _ := GetTransaction(outer)
		return service.Execute(outer, func(inner context.Context) error {
			innerTx, _ := GetTransaction(inner)
			assert.Same(t, outerTx, innerTx)
			return innerTx.Create(&Role{Name: "Manager"}).Error
		})
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), countRoles(t, db))
}

func TestGetTransaction_NoTransaction(t *testing.T) {
	_, ok := GetTransaction(context.Background())
	assert.False(t, ok)
}

func TestCacheInvalidationService_PublishesActivity(t *testing.T) {
	bus := events.New(nil, config.Config{})
	defer bus.Close()

	var received []events.Event
	bus.Subscribe(events.ActivityChannel, func(e events.Event) { received = append(received, e) })

	service := NewCacheInvalidationService(database.DB{}, bus)
	activity := service.Invalidate(context.Background(), EntityMember, ActionCreated, 12)

	assert.Equal(t, EntityMember, activity.Entity)
	assert.Equal(t, 12, activity.EntityID)
	require.Len(t, received, 1)
	assert.Equal(t, activity.ID, received[0].ID)
	assert.Equal(t, ActionCreated, received[0].Action)
	assert.Equal(t, 12, received[0].Data["entityId"])
}

func TestNotificationService_SessionNotices(t *testing.T) {
	service := NewNotificationService()
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)

	notice := SessionNotice{
		Session: Session{
			BaseModel:   BaseModel{ID: 3},
			SessionDate: NewDate(2025, time.May, 10),
			StartTime:   NewClockTime(18, 30),
			SessionType: SessionGame,
			Address:     strings.Repeat("Long Street ", 10),
		},
		TeamName:     "Falcons",
		OpponentName: "Hawks",
		LocationID:   IntPtr(1),
		Recipients: []RosterEntry{
			{MemberID: 1, FirstName: "Ana", Email: "ana@example.com", Role: RoleSetter},
			{MemberID: 2, FirstName: "Bea"},
		},
	}

	logs := service.SessionNotices(notice, now)

	require.Len(t, logs, 1)
	assert.Equal(t, "ana@example.com", logs[0].ReceiverEmail)
	assert.Equal(t, "Falcons game on 2025-05-10", logs[0].Subject)
	assert.Equal(t, now, logs[0].EmailDate)
	assert.Equal(t, IntPtr(1), logs[0].SenderLocationID)
	assert.LessOrEqual(t, len([]rune(logs[0].BodySnippet)), 100)
	assert.True(t, strings.HasPrefix(logs[0].BodySnippet, "Hi Ana, you play Setter for Falcons on 2025-05-10 at 18:30:00 against Hawks"))
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "short", Snippet("short", 100))
	assert.Equal(t, "abc", Snippet("abcdef", 3))
	assert.Equal(t, "éé", Snippet("ééé", 2))
}
