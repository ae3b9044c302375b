package repositories

import (
	"testing"
	"time"

	. "clubmanager/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository_ForMemberYear(t *testing.T) {
	db := newTestDB(t)
	repo := NewPayment(db)
	ana := seedMember(t, db, "Ana", GenderFemale, nil)
	bea := seedMember(t, db, "Bea", GenderFemale, nil)

	payments := []Payment{
		{MemberID: ana.ID, PaymentDate: NewDate(2025, time.February, 1), Amount: decimal.NewFromInt(120), Method: PaymentCash, MembershipYear: 2025},
		{MemberID: ana.ID, PaymentDate: NewDate(2025, time.March, 1), Amount: decimal.RequireFromString("15.50"), Method: PaymentDebit, MembershipYear: 2025, IsDonation: true},
		{MemberID: ana.ID, PaymentDate: NewDate(2024, time.March, 1), Amount: decimal.NewFromInt(200), Method: PaymentCredit, MembershipYear: 2024},
		{MemberID: bea.ID, PaymentDate: NewDate(2025, time.March, 1), Amount: decimal.NewFromInt(100), Method: PaymentCash, MembershipYear: 2025},
	}
	for i := range payments {
		require.NoError(t, repo.Create(ctx, &payments[i]))
	}

	year, err := repo.ForMemberYear(ctx, ana.ID, 2025)
	require.NoError(t, err)
	require.Len(t, year, 2)
	assert.True(t, decimal.NewFromInt(120).Equal(year[0].Amount))
	assert.False(t, year[0].IsDonation)
	assert.True(t, decimal.RequireFromString("15.5").Equal(year[1].Amount))
	assert.True(t, year[1].IsDonation)

	all, err := repo.ForMember(ctx, ana.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 2025, all[0].MembershipYear)

	views, err := repo.ForYear(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "Ana", views[0].MemberFirstName)

	got, err := repo.GetByID(ctx, payments[3].ID)
	require.NoError(t, err)
	assert.Equal(t, bea.ID, got.MemberID)
}
