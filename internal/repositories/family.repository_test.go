package repositories

import (
	"testing"
	"time"

	"clubmanager/internal/apperrors"
	. "clubmanager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFamily(t *testing.T, repo FamilyRepository, first string) FamilyMember {
	t.Helper()

	family := FamilyMember{FirstName: first, LastName: "Parent", Identity: nextIdentity()}
	require.NoError(t, repo.Create(ctx, &family))
	return family
}

func TestFamilyRepository_Children(t *testing.T) {
	db := newTestDB(t)
	repo := NewFamily(db)
	family := seedFamily(t, repo, "Marta")
	ana := seedMember(t, db, "Ana", GenderFemale, nil)

	require.NoError(t, repo.AddChild(ctx, &FamilyMemberChild{FamilyID: family.ID, MemberID: ana.ID, Relationship: RelationshipMother}))

	err := repo.AddChild(ctx, &FamilyMemberChild{FamilyID: family.ID, MemberID: ana.ID, Relationship: RelationshipTutor})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeDuplicateAssociation))

	err = repo.AddChild(ctx, &FamilyMemberChild{FamilyID: family.ID, MemberID: 999, Relationship: RelationshipTutor})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	children, err := repo.Children(ctx, family.ID)
	require.NoError(t, err)
	require.Len(t, children[family.ID], 1)
	assert.Equal(t, FamilyChildView{MemberID: ana.ID, FirstName: "Ana", LastName: "Tester", Relationship: RelationshipMother}, children[family.ID][0])

	require.NoError(t, repo.RemoveChild(ctx, family.ID, ana.ID))
	err = repo.RemoveChild(ctx, family.ID, ana.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestFamilyRepository_Secondary(t *testing.T) {
	db := newTestDB(t)
	repo := NewFamily(db)
	secondaryRepo := NewSecondaryFamily(db)
	family := seedFamily(t, repo, "Marta")
	other := seedFamily(t, repo, "Luis")

	secondary := SecondaryFamilyMember{
		PrimaryFamilyID: family.ID,
		FirstName:       "Rosa",
		LastName:        "Parent",
		Relationship:    RelationshipGrandmother,
	}
	require.NoError(t, secondaryRepo.Create(ctx, &secondary))

	byFamily, err := repo.Secondary(ctx, family.ID, other.ID)
	require.NoError(t, err)
	require.Len(t, byFamily[family.ID], 1)
	assert.Empty(t, byFamily[other.ID])
	assert.Equal(t, "Rosa", byFamily[family.ID][0].FirstName)

	require.NoError(t, repo.Delete(ctx, family.ID))

	_, err = secondaryRepo.GetByID(ctx, secondary.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestFamilyRepository_View(t *testing.T) {
	db := newTestDB(t)
	repo := NewFamily(db)
	location := seedLocation(t, db, "Verdun")

	dob := NewDate(1980, time.July, 4)
	family := FamilyMember{FirstName: "Marta", LastName: "Parent", DOB: &dob, Identity: nextIdentity(), LocationID: &location.ID}
	require.NoError(t, repo.Create(ctx, &family))

	view, err := repo.GetView(ctx, family.ID)
	require.NoError(t, err)
	require.NotNil(t, view.DOB)
	assert.Equal(t, "1980-07-04", view.DOB.String())
	require.NotNil(t, view.LocationName)
	assert.Equal(t, "Verdun", *view.LocationName)

	taken, err := repo.SSNTaken(ctx, family.SSN, nil)
	require.NoError(t, err)
	assert.True(t, taken)
}
