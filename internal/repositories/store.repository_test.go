package repositories

import (
	"context"
	"testing"
	"time"

	"clubmanager/internal/apperrors"
	. "clubmanager/internal/models"
	"clubmanager/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityStore_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewMember(db)
	location := seedLocation(t, db, "Verdun")

	member := ClubMember{
		FirstName:  "Ana",
		LastName:   "Lopez",
		DOB:        NewDate(2008, time.February, 29),
		Height:     decimal.NewNullDecimal(decimal.RequireFromString("171.5")),
		Identity:   Identity{SSN: "123-456-789", MedicareCard: "LOPA 0802 2900"},
		Contact:    Contact{Phone: "514-555-0101", City: "Montreal", Email: "ana@example.com"},
		Gender:     GenderFemale,
		Status:     StatusActive,
		JoinDate:   NewDate(2025, time.January, 15),
		LocationID: &location.ID,
	}
	require.NoError(t, repo.Create(ctx, &member))
	require.NotZero(t, member.ID)

	got, err := repo.GetByID(ctx, member.ID)
	require.NoError(t, err)

	assert.Equal(t, member.FirstName, got.FirstName)
	assert.Equal(t, member.LastName, got.LastName)
	assert.True(t, member.DOB.Equal(got.DOB), "dob %s", got.DOB)
	assert.True(t, got.Height.Valid)
	assert.True(t, member.Height.Decimal.Equal(got.Height.Decimal))
	assert.False(t, got.Weight.Valid)
	assert.Equal(t, member.Identity, got.Identity)
	assert.Equal(t, member.Contact, got.Contact)
	assert.Equal(t, member.Gender, got.Gender)
	assert.Equal(t, member.Status, got.Status)
	assert.True(t, member.JoinDate.Equal(got.JoinDate))
	assert.Equal(t, member.LocationID, got.LocationID)
}

func TestEntityStore_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := NewLocation(db).GetByID(ctx, 404)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	err = NewLocation(db).Delete(ctx, 404)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestEntityStore_DuplicateIdentity(t *testing.T) {
	db := newTestDB(t)
	repo := NewMember(db)
	first := seedMember(t, db, "Ana", GenderFemale, nil)

	clone := first
	clone.ID = 0
	clone.MedicareCard = "OTHER"

	err := repo.Create(ctx, &clone)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeDuplicateIdentity))
	assert.Equal(t, 400, apperrors.From(err).HTTPStatus())
}

func TestEntityStore_ForeignKeys(t *testing.T) {
	db := newTestDB(t)
	location := seedLocation(t, db, "Laval")
	seedMember(t, db, "Ana", GenderFemale, &location.ID)

	err := NewLocation(db).Delete(ctx, location.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeStillReferenced))

	orphan := ClubMember{
		FirstName: "Bea", LastName: "Tester",
		DOB:        NewDate(2000, time.January, 1),
		Identity:   nextIdentity(),
		Gender:     GenderFemale,
		Status:     StatusActive,
		JoinDate:   NewDate(2025, time.January, 1),
		LocationID: IntPtr(999),
	}
	err = NewMember(db).Create(ctx, &orphan)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestEntityStore_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocation(db)
	location := seedLocation(t, db, "Old name")

	location.Name = "New name"
	require.NoError(t, repo.Update(ctx, location.ID, &location))

	got, err := repo.GetByID(ctx, location.ID)
	require.NoError(t, err)
	assert.Equal(t, "New name", got.Name)

	exists, err := repo.Exists(ctx, location.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, location.ID))

	exists, err = repo.Exists(ctx, location.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEntityStore_JoinsTransaction(t *testing.T) {
	db := newTestDB(t)
	repo := NewRole(db)
	transactions := services.NewTransactionService(db)

	err := transactions.Execute(ctx, func(txCtx context.Context) error {
		if err := repo.Create(txCtx, &Role{Name: "Coach"}); err != nil {
			return err
		}
		return apperrors.BusinessRule(apperrors.CodeUnexpected, "abort")
	})
	require.Error(t, err)

	roles, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestLookupRepositories(t *testing.T) {
	db := newTestDB(t)
	hobbies := NewHobby(db)

	for _, name := range []string{"Swimming", "Chess"} {
		require.NoError(t, hobbies.Create(ctx, &Hobby{Name: name}))
	}

	all, err := hobbies.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Chess", all[0].Name)

	err = hobbies.Create(ctx, &Hobby{Name: "Chess"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeDuplicateIdentity))
}
