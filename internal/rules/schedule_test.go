package rules

import (
	"testing"
	"time"

	"clubmanager/internal/apperrors"
	. "clubmanager/internal/models"

	"github.com/stretchr/testify/assert"
)

func session(id int, day Date, hour, minute int) Session {
	return Session{
		BaseModel:   BaseModel{ID: id},
		SessionDate: day,
		StartTime:   NewClockTime(hour, minute),
		SessionType: SessionTraining,
	}
}

func TestGap(t *testing.T) {
	assert.Equal(t, 2*time.Hour, Gap(NewClockTime(10, 0), NewClockTime(12, 0)))
	assert.Equal(t, 2*time.Hour, Gap(NewClockTime(12, 0), NewClockTime(10, 0)))
	assert.Equal(t, time.Duration(0), Gap(NewClockTime(9, 30), NewClockTime(9, 30)))
}

func TestCheckScheduleConflict(t *testing.T) {
	day := NewDate(2025, time.May, 10)
	existing := []Session{session(1, day, 10, 0)}

	tests := []struct {
		name      string
		candidate Session
		conflict  bool
	}{
		{name: "same start time", candidate: session(2, day, 10, 0), conflict: true},
		{name: "two hours later", candidate: session(2, day, 12, 0), conflict: true},
		{name: "two hours earlier", candidate: session(2, day, 8, 0), conflict: true},
		{name: "just under three hours", candidate: session(2, day, 12, 59), conflict: true},
		{name: "exactly three hours", candidate: session(2, day, 13, 0), conflict: false},
		{name: "exactly three hours earlier", candidate: session(2, day, 7, 0), conflict: false},
		{name: "other day", candidate: session(2, day.AddDays(1), 10, 0), conflict: false},
		{name: "same session", candidate: session(1, day, 10, 0), conflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckScheduleConflict(tt.candidate, existing)
			if !tt.conflict {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.HasCode(err, apperrors.CodeScheduleConflict))
			assert.Contains(t, err.Error(), "conflicting assignment")
		})
	}
}

func TestCheckScheduleConflict_NoExistingSessions(t *testing.T) {
	assert.NoError(t, CheckScheduleConflict(session(0, NewDate(2025, time.May, 10), 10, 0), nil))
}
