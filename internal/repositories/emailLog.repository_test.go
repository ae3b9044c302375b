package repositories

import (
	"testing"
	"time"

	. "clubmanager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailLogRepository_CreateBatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmailLog(db)
	location := seedLocation(t, db, "Verdun")

	require.NoError(t, repo.CreateBatch(ctx, nil))

	sent := time.Date(2025, time.May, 3, 12, 0, 0, 0, time.UTC)
	logs := []EmailLog{
		{EmailDate: sent, SenderLocationID: &location.ID, ReceiverEmail: "ana@example.com", Subject: "Falcons game on 2025-05-10"},
		{EmailDate: sent.Add(time.Minute), ReceiverEmail: "bea@example.com", Subject: "Falcons game on 2025-05-10"},
	}
	require.NoError(t, repo.CreateBatch(ctx, logs))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, "bea@example.com", all[0].ReceiverEmail)
	assert.Nil(t, all[0].SenderLocationName)
	require.NotNil(t, all[1].SenderLocationName)
	assert.Equal(t, "Verdun", *all[1].SenderLocationName)
	require.NotNil(t, all[1].SenderLocationType)
	assert.Equal(t, LocationBranch, *all[1].SenderLocationType)
}
