package rules

import (
	"testing"
	"time"

	"clubmanager/internal/apperrors"
	. "clubmanager/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAgeOn_UsesCalendarYears(t *testing.T) {
	now := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 11, AgeOn(NewDate(2014, time.December, 31), now))
	assert.Equal(t, 11, AgeOn(NewDate(2014, time.January, 1), now))
	assert.Equal(t, 0, AgeOn(NewDate(2025, time.June, 1), now))
}

func TestCategoryFor(t *testing.T) {
	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dob      Date
		expected AgeCategory
	}{
		{name: "seventeen is minor", dob: NewDate(2008, time.May, 1), expected: CategoryMinor},
		{name: "eighteen is major", dob: NewDate(2007, time.December, 31), expected: CategoryMajor},
		{name: "adult", dob: NewDate(1980, time.February, 2), expected: CategoryMajor},
		{name: "child", dob: NewDate(2013, time.February, 2), expected: CategoryMinor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryFor(tt.dob, now))
		})
	}
}

func TestCategoryInYear(t *testing.T) {
	dob := NewDate(2007, time.December, 31)

	assert.Equal(t, CategoryMinor, CategoryInYear(dob, 2024))
	assert.Equal(t, CategoryMajor, CategoryInYear(dob, 2025))
}

func TestCheckMinimumAge(t *testing.T) {
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dob     Date
		wantErr bool
		kind    apperrors.Kind
	}{
		{name: "ten years old", dob: NewDate(2015, time.January, 1), wantErr: true, kind: apperrors.KindBusinessRule},
		{name: "born this year", dob: NewDate(2025, time.January, 1), wantErr: true, kind: apperrors.KindBusinessRule},
		{name: "eleven by calendar year", dob: NewDate(2014, time.December, 31), wantErr: false},
		{name: "adult", dob: NewDate(1990, time.April, 4), wantErr: false},
		{name: "missing dob", dob: Date{}, wantErr: true, kind: apperrors.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckMinimumAge(tt.dob, now)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsKind(err, tt.kind))
		})
	}

	err := CheckMinimumAge(NewDate(2016, time.March, 3), now)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeMemberTooYoung))
}

func TestCheckIdentityAvailable(t *testing.T) {
	assert.NoError(t, CheckIdentityAvailable(KindClubMember, false, false))

	err := CheckIdentityAvailable(KindPersonnel, true, true)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeSSNTaken))
	assert.Contains(t, err.Error(), "personnel")

	err = CheckIdentityAvailable(KindFamilyMember, false, true)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeMedicareTaken))
	assert.True(t, apperrors.IsKind(err, apperrors.KindBusinessRule))
}
